package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

// TodosKey is the fixed storage key holding the serialized collection.
const TodosKey = "todos"

// User-facing messages carried in SaveResult and forwarded verbatim to toasts.
const (
	MsgQuotaExceeded = "Storage is full. Your changes are kept in memory but will be lost when the session ends."
	MsgSaveFailed    = "Could not save your todos. Your changes are kept in memory only."
)

// Schema for the persisted collection. additionalProperties:false gives the
// "exactly these fields" semantics; a single bad element invalidates the
// whole array (all-or-nothing, no partial recovery).
const todosSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "description", "completed", "createdAt"],
		"additionalProperties": false,
		"properties": {
			"id": {"type": "string"},
			"title": {"type": "string"},
			"description": {"type": "string"},
			"completed": {"type": "boolean"},
			"createdAt": {"type": "string"}
		}
	}
}`

var compiledTodosSchema = jsonschema.MustCompileString("todos.schema.json", todosSchema)

// IsValidTodos reports whether a decoded JSON value satisfies the Todo-array
// shape. The zero-length array is valid; nil, scalars and plain objects are not.
func IsValidTodos(v interface{}) bool {
	return compiledTodosSchema.Validate(v) == nil
}

// TodoStorage reads and writes the whole collection under TodosKey. Every
// failure mode is contained here: reads fall back to an empty collection,
// writes report through SaveResult. No error crosses this boundary.
type TodoStorage struct {
	store  port.KeyValueStore
	logger zerolog.Logger
	probe  port.Probe
}

func NewTodoStorage(store port.KeyValueStore, logger zerolog.Logger, probe port.Probe) *TodoStorage {
	return &TodoStorage{
		store:  store,
		logger: logger,
		probe:  probe,
	}
}

// todoRecord is the wire form of a todo; createdAt stays a string until it is
// normalized to a time value.
type todoRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

func (s *TodoStorage) Load(ctx context.Context) []domain.Todo {
	raw, found, err := s.store.Get(ctx, TodosKey)

	if err != nil {
		s.logger.Warn().Err(err).Str("key", TodosKey).Msg("reading todos from storage failed")
		s.probe.RecordLoad(port.LoadError)
		return []domain.Todo{}
	}

	if !found {
		s.probe.RecordLoad(port.LoadEmpty)
		return []domain.Todo{}
	}

	var decoded interface{}

	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Warn().Err(err).Str("key", TodosKey).Msg("stored todos are not valid JSON, clearing key")
		s.clear(ctx)
		s.probe.RecordLoad(port.LoadCorrupt)
		return []domain.Todo{}
	}

	if err := compiledTodosSchema.Validate(decoded); err != nil {
		s.logger.Warn().Err(err).Str("key", TodosKey).Msg("stored todos do not match the expected shape, clearing key")
		s.clear(ctx)
		s.probe.RecordLoad(port.LoadInvalid)
		return []domain.Todo{}
	}

	var records []todoRecord

	if err := json.Unmarshal(raw, &records); err != nil {
		// schema validation passed, so this is effectively unreachable
		s.clear(ctx)
		s.probe.RecordLoad(port.LoadCorrupt)
		return []domain.Todo{}
	}

	todos := make([]domain.Todo, 0, len(records))

	for _, r := range records {
		todos = append(todos, domain.Todo{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Completed:   r.Completed,
			CreatedAt:   parseCreatedAt(r.CreatedAt),
		})
	}

	s.probe.RecordLoad(port.LoadOK)

	return todos
}

func (s *TodoStorage) Save(ctx context.Context, todos []domain.Todo) port.SaveResult {
	if todos == nil {
		// nil would serialize as JSON null and fail shape validation on reload
		todos = []domain.Todo{}
	}

	payload, err := json.Marshal(todos)

	if err != nil {
		s.logger.Warn().Err(err).Msg("serializing todos failed")
		s.probe.RecordSave(port.SaveFailure)
		return port.SaveResult{Success: false, Error: MsgSaveFailed}
	}

	if err := s.store.Set(ctx, TodosKey, payload); err != nil {
		if errors.Is(err, port.ErrQuotaExceeded) {
			s.logger.Warn().Int("bytes", len(payload)).Msg("storage quota exceeded, keeping todos in memory only")
			s.probe.RecordSave(port.SaveQuota)
			return port.SaveResult{Success: false, Error: MsgQuotaExceeded}
		}

		s.logger.Warn().Err(err).Msg("writing todos to storage failed")
		s.probe.RecordSave(port.SaveFailure)
		return port.SaveResult{Success: false, Error: MsgSaveFailed}
	}

	s.probe.RecordSave(port.SaveOK)

	return port.SaveResult{Success: true}
}

// clear is best-effort: the in-memory empty-collection fallback already
// restores correctness, so a failed delete is swallowed.
func (s *TodoStorage) clear(ctx context.Context) {
	_ = s.store.Delete(ctx, TodosKey)
}

func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)

	if err != nil {
		return time.Time{}
	}

	return t
}
