package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	. "todolist/internal/adapter/http/helper"
	. "todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/model/request"
	"todolist/internal/core/model/response"
	"todolist/internal/core/port"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc port.TodoService
}

func NewTodoHandler(svc port.TodoService) *TodoHandler {
	return &TodoHandler{
		svc: svc,
	}
}

func (t *TodoHandler) GetAllTodos(c *gin.Context) {
	todos := t.svc.Todos()

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, toTodoResponse(todo))
	}

	c.JSON(http.StatusOK, response.TodoListResponse{
		Size: len(data),
		Data: data,
	})
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTodoRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	todo := t.svc.AddTodo(ctx, params.Title, params.Description)

	slog.Info("Todo#create", "id", todo.ID, "title", todo.Title)

	SendSuccess(c, http.StatusCreated, toTodoResponse(todo))
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var params request.UpdateTodoRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	updates := domain.TodoUpdates{
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	todo, found := t.svc.EditTodo(ctx, id, updates)

	if !found {
		SendNotFoundError(c, "todo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toTodoResponse(todo)})
}

func (t *TodoHandler) ToggleTodo(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	todo, found := t.svc.ToggleTodoCompletion(ctx, id)

	if !found {
		SendNotFoundError(c, "todo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toTodoResponse(todo)})
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if !t.svc.DeleteTodo(ctx, id) {
		SendNotFoundError(c, "todo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
	})
}

func toTodoResponse(todo domain.Todo) response.TodoResponse {
	return response.TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
	}
}
