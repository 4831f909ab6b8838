package session

import (
	"context"
	"strconv"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "inkwell"
	tokenAudience = "inkwell-web"
)

// Manager issues, resolves, and revokes session tokens. It mutates only
// session-scoped state, never entity storage.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	users  repository.UserRepository
}

// NewManager creates a session manager. The store holds the server-side
// half of each session; users resolves authenticated ids back to entities.
func NewManager(secret string, ttl time.Duration, store Store, users repository.UserRepository) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		users:  users,
	}
}

// Issue establishes a new authenticated session for userID and returns the
// token to surface to the client. Issuing a session while another exists
// simply supersedes it on the client; the old token stays independently
// revocable.
func (m *Manager) Issue(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(m.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": sid,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Put(ctx, sid, userID, m.ttl); err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the User for a session token, or (nil, nil) when the
// token is absent, malformed, tampered, expired, revoked, or references a
// user that no longer resolves. All anonymous-equivalent cases are
// indistinguishable to the caller.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	sid, userID, ok := m.parse(token)
	if !ok {
		return nil, nil
	}

	storedID, found, err := m.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if !found || storedID != userID {
		return nil, nil
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			// Dangling reference is treated identically to anonymous.
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Revoke invalidates the session token. Unparseable tokens are already
// unusable and revoke as a no-op.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	sid, _, ok := m.parse(token)
	if !ok {
		return nil
	}
	return m.store.Delete(ctx, sid)
}

// parse validates the token signature and registered claims and extracts
// the session id and user id.
func (m *Manager) parse(token string) (sid string, userID uint, ok bool) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", 0, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, false
	}

	sid, ok = claims["jti"].(string)
	if !ok || sid == "" {
		return "", 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", 0, false
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return "", 0, false
	}

	return sid, uint(id), true
}
