package port

import (
	"context"
	"errors"

	"todolist/internal/core/domain"
)

// ErrQuotaExceeded is returned by a KeyValueStore when a write is rejected
// because the store's capacity limit would be exceeded. Callers must treat
// it as non-fatal and continue operating in memory.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// KeyValueStore is the session-scoped store boundary. The core never touches
// a concrete store directly; backends are swapped behind this port.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SaveResult reports the outcome of persisting the collection. Failures carry
// a user-facing message; they are never surfaced as errors past the storage
// boundary.
type SaveResult struct {
	Success bool
	Error   string
}

type TodoStorage interface {
	Load(ctx context.Context) []domain.Todo
	Save(ctx context.Context, todos []domain.Todo) SaveResult
}
