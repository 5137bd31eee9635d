package port

import (
	"context"

	"todolist/internal/core/domain"
)

type TodoService interface {
	AddTodo(ctx context.Context, title string, description string) domain.Todo
	EditTodo(ctx context.Context, id string, updates domain.TodoUpdates) (domain.Todo, bool)
	ToggleTodoCompletion(ctx context.Context, id string) (domain.Todo, bool)
	DeleteTodo(ctx context.Context, id string) bool
	Todos() []domain.Todo
	Len() int
}
