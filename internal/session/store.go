// Package session tracks the current actor across requests. A session is
// a signed token whose id must also be present in a server-side store, so
// logout genuinely invalidates it.
package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"inkwell/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Store persists session ids between requests.
type Store interface {
	Put(ctx context.Context, sid string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, sid string) (uint, bool, error)
	Delete(ctx context.Context, sid string) error
}

const redisKeyPrefix = "sess:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by Redis.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Put(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	err := s.client.Set(ctx, redisKeyPrefix+sid, strconv.FormatUint(uint64(userID), 10), ttl).Err()
	if err != nil {
		observability.SessionStoreErrors.WithLabelValues("put").Inc()
	}
	return err
}

func (s *redisStore) Get(ctx context.Context, sid string) (uint, bool, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		observability.SessionStoreErrors.WithLabelValues("get").Inc()
		return 0, false, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint(userID), true, nil
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	err := s.client.Del(ctx, redisKeyPrefix+sid).Err()
	if err != nil {
		observability.SessionStoreErrors.WithLabelValues("delete").Inc()
	}
	return err
}

type memoryEntry struct {
	userID  uint
	expires time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns an in-process Store. It is the fallback when
// Redis is unreachable and the default in tests.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Put(_ context.Context, sid string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sid] = memoryEntry{userID: userID, expires: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(_ context.Context, sid string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sid]
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(entry.expires) {
		delete(s.entries, sid)
		return 0, false, nil
	}
	return entry.userID, true, nil
}

func (s *memoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}
