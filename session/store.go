package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName carries the opaque session id. No token is ever issued to the
// client; the id is only meaningful against this store.
const CookieName = "qbread_session"

// Store holds server-side sessions. A session records nothing but the owning
// user id; the user row is re-fetched on every request.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	UserID(ctx context.Context, sessionID string) (uint, bool, error)
	Destroy(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) getKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	key := s.getKey(sessionID)

	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *RedisStore) UserID(ctx context.Context, sessionID string) (uint, bool, error) {
	key := s.getKey(sessionID)
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uint(userID), true, nil
}

func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.getKey(sessionID)).Err()
}
