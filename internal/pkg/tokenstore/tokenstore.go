// Package tokenstore keeps the bearer credential of each dashboard session.
//
// A credential is set at login, cleared at logout and expires with its TTL.
// The reservation API client reads it through Store and never caches it.
package tokenstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"reservation-dashboard/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dashboard:session:"

type Store interface {
	Save(ctx context.Context, sessionID, token string, ttl time.Duration) error
	// Token returns errors.AuthMissing when the session has no live credential.
	Token(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

type sessionKey struct{}

func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

func NewSessionID() string {
	return uuid.NewString()
}

type redisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, token, ttl).Err(); err != nil {
		return errors.InternalServerError(fmt.Sprintf("error save session: %v", err))
	}
	return nil
}

func (s *redisStore) Token(ctx context.Context, sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", errors.AuthMissing()
	}
	token, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil || (err == nil && token == "") {
		return "", errors.AuthMissing()
	}
	if err != nil {
		return "", errors.InternalServerError(fmt.Sprintf("error get session: %v", err))
	}
	return token, nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return errors.InternalServerError(fmt.Sprintf("error clear session: %v", err))
	}
	return nil
}

type memoryItem struct {
	token     string
	expiresAt time.Time
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

// NewMemory returns a process-local store for single-instance deployments without redis.
func NewMemory() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memoryStore {
	return &memoryStore{items: make(map[string]memoryItem), now: now}
}

func (s *memoryStore) Save(_ context.Context, sessionID, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := memoryItem{token: token}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.items[sessionID] = item
	return nil
}

func (s *memoryStore) Token(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[sessionID]
	if !ok || item.token == "" {
		return "", errors.AuthMissing()
	}
	if !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt) {
		delete(s.items, sessionID)
		return "", errors.AuthMissing()
	}
	return item.token, nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}
