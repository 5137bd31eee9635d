package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"todolist/internal/core/port"
)

// SessionStore holds session-scoped values in Redis with a per-key TTL, for
// deployments where the session has to survive a process restart.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(addr string, sessionTTL time.Duration) *SessionStore {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &SessionStore{
		client: client,
		ttl:    sessionTTL,
	}
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, key, value, s.ttl).Err()

	if err != nil && strings.Contains(err.Error(), "OOM") {
		// Redis rejects writes with "OOM command not allowed" when maxmemory
		// is reached
		return fmt.Errorf("%w: %v", port.ErrQuotaExceeded, err)
	}

	return err
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
