package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "booking:session:"

// SessionStore persists submission sessions for stage attribution and
// resubmission after failure.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
}

// RedisSessionStore implements SessionStore with a TTL per session.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a session store with a 30 minute TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: 30 * time.Minute}
}

func (r *RedisSessionStore) Save(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session %s: %w", s.ID, err)
	}
	if err := r.Client.Set(ctx, sessionKeyPrefix+s.ID, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session %s: %w", s.ID, err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session %s: %w", sessionID, err)
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse booking session %s: %w", sessionID, err)
	}
	return &s, nil
}
