package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"todolist/internal/core/port"
)

// SessionStore keeps session-scoped values in process memory. All entries
// share one TTL, mirroring a browsing session: once it lapses the collection
// is gone. A byte quota of zero disables the capacity check.
type SessionStore struct {
	cache *cache.Cache
	quota int
}

func NewSessionStore(sessionTTL time.Duration, quotaBytes int) *SessionStore {
	ttl := sessionTTL

	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &SessionStore{
		cache: cache.New(ttl, 10*time.Minute),
		quota: quotaBytes,
	}
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found := s.cache.Get(key)

	if !found {
		return nil, false, nil
	}

	raw, ok := value.([]byte)

	if !ok {
		return nil, false, nil
	}

	return raw, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte) error {
	if s.quota > 0 {
		total := len(value)

		// live entries only; the key being replaced does not count
		for k, item := range s.cache.Items() {
			if k == key {
				continue
			}

			if raw, ok := item.Object.([]byte); ok {
				total += len(raw)
			}
		}

		if total > s.quota {
			return port.ErrQuotaExceeded
		}
	}

	s.cache.SetDefault(key, value)

	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *SessionStore) Close() error {
	s.cache.Flush()
	return nil
}
