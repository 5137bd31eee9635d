package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

// TodoService owns the authoritative in-memory collection. It hydrates once
// from storage at construction and re-persists the whole collection after
// every mutation attempt through the collectionChanged hook. Mutations are
// serialized by the mutex, so no caller ever observes torn state.
type TodoService struct {
	storage  port.TodoStorage
	notifier port.Toaster
	probe    port.Probe

	mu    sync.RWMutex
	todos []domain.Todo
}

func NewTodoService(ctx context.Context, storage port.TodoStorage, notifier port.Toaster, probe port.Probe) *TodoService {
	s := &TodoService{
		storage:  storage,
		notifier: notifier,
		probe:    probe,
	}

	// hydration; what was just loaded is not written back
	s.todos = storage.Load(ctx)

	return s
}

func (s *TodoService) AddTodo(ctx context.Context, title string, description string) domain.Todo {
	todo := domain.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.todos = append(s.todos, todo)
	s.collectionChanged(ctx)
	s.mu.Unlock()

	s.probe.RecordTodoOperation("add")

	return todo
}

// EditTodo replaces the matching record with a shallow merge of the existing
// record and updates. When no record matches, the collection is unchanged but
// the mutation attempt still re-persists it.
func (s *TodoService) EditTodo(ctx context.Context, id string, updates domain.TodoUpdates) (domain.Todo, bool) {
	s.mu.Lock()

	var updated domain.Todo
	found := false

	for i, todo := range s.todos {
		if todo.ID == id {
			s.todos[i] = todo.Merge(updates)
			updated = s.todos[i]
			found = true
			break
		}
	}

	s.collectionChanged(ctx)
	s.mu.Unlock()

	if !found {
		slog.Warn("editTodo: no todo matched", "id", id)
	}

	s.probe.RecordTodoOperation("edit")

	return updated, found
}

// ToggleTodoCompletion flips the completed flag on the matching record.
func (s *TodoService) ToggleTodoCompletion(ctx context.Context, id string) (domain.Todo, bool) {
	s.mu.Lock()

	var toggled domain.Todo
	found := false

	for i, todo := range s.todos {
		if todo.ID == id {
			s.todos[i].Completed = !todo.Completed
			toggled = s.todos[i]
			found = true
			break
		}
	}

	s.collectionChanged(ctx)
	s.mu.Unlock()

	s.probe.RecordTodoOperation("toggle")

	return toggled, found
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) bool {
	s.mu.Lock()

	found := false

	for i, todo := range s.todos {
		if todo.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			found = true
			break
		}
	}

	s.collectionChanged(ctx)
	s.mu.Unlock()

	s.probe.RecordTodoOperation("delete")

	return found
}

func (s *TodoService) Todos() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)

	return out
}

func (s *TodoService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.todos)
}

// collectionChanged persists the whole collection exactly once per mutation
// attempt and surfaces failures as warning toasts. There is no retry, no
// rollback of the in-memory state, and later operations are never blocked.
// Callers must hold the write lock.
func (s *TodoService) collectionChanged(ctx context.Context) {
	snapshot := make([]domain.Todo, len(s.todos))
	copy(snapshot, s.todos)

	result := s.storage.Save(ctx, snapshot)

	if !result.Success && result.Error != "" {
		s.notifier.ShowToast(result.Error, domain.SeverityWarning, 0)
	}
}
