package test

import (
	"context"
	"sync"

	"todolist/internal/core/port"
)

// StubStore is an in-memory KeyValueStore with fault injection and call
// counting, shared by the service and handler suites.
type StubStore struct {
	mu   sync.Mutex
	data map[string][]byte

	GetErr    error
	SetErr    error
	DeleteErr error

	SetCalls    int
	DeleteCalls int
}

func NewStubStore() *StubStore {
	return &StubStore{
		data: map[string][]byte{},
	}
}

// Seed places a raw value without counting it as a Set call.
func (s *StubStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

func (s *StubStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data[key]

	return ok
}

func (s *StubStore) Value(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data[key]
}

func (s *StubStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]

	if !ok {
		return nil, false, nil
	}

	return value, true, nil
}

func (s *StubStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.SetCalls++
	s.mu.Unlock()

	if s.SetErr != nil {
		return s.SetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value

	return nil
}

func (s *StubStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.DeleteCalls++
	s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *StubStore) Close() error {
	return nil
}

var _ port.KeyValueStore = (*StubStore)(nil)
