package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound indicates the token maps to no live session, either
// because it never existed, was destroyed, or expired.
var ErrNotFound = errors.New("session not found")

// Record is the identity stored against a session token. It is written
// once at login and read on every protected request.
type Record struct {
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Store is the session capability: create at login, read on every
// protected request, destroy at logout. Implementations own token
// generation so callers never construct identifiers themselves.
type Store interface {
	Create(ctx context.Context, record Record) (string, error)
	Get(ctx context.Context, token string) (Record, error)
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis so the authorization guard is
// decoupled from process-local state.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed session store with the given
// lifetime per session.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create stores the record under a fresh opaque token and returns it.
func (s *RedisStore) Create(ctx context.Context, record Record) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode session record: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get loads the record for a token, returning ErrNotFound for unknown
// or expired tokens.
func (s *RedisStore) Get(ctx context.Context, token string) (Record, error) {
	if token == "" {
		return Record{}, ErrNotFound
	}

	payload, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("failed to read session: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return Record{}, fmt.Errorf("failed to decode session record: %w", err)
	}

	return record, nil
}

// Destroy removes the session; destroying an unknown token is a no-op.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(token)).Err()
}
