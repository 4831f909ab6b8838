// Package service contains the orchestration logic behind each request
// handler.
package service

import (
	"context"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// UserService implements the registration and login flows.
type UserService struct {
	users repository.UserRepository
}

// RegisterInput carries the already syntactically-validated registration
// form fields.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new account. A duplicate email fails with
// DUPLICATE_EMAIL and leaves the store unchanged; the handler redirects
// such callers to the login page. The friendly lookup below is advisory
// only; the database unique constraint decides races.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateEmailError(email)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    email,
		Name:     in.Name,
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.Registrations.Inc()
	return user, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same INVALID_CREDENTIALS error by design.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
