package service_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todolist/pkg/test"

	"todolist/internal/core/domain"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
	"todolist/internal/core/telemetry"

	factory "todolist/pkg/test/factory"
)

type TodoServiceSuite struct {
	suite.Suite
	Store    *StubStore
	Storage  *service.TodoStorage
	Notifier *service.Notifier
}

func (s *TodoServiceSuite) SetupTest() {
	s.Store = NewStubStore()
	s.Storage = service.NewTodoStorage(s.Store, zerolog.Nop(), telemetry.NewNoOpProbe())
	s.Notifier = service.NewNotifier(time.Minute, zerolog.Nop(), telemetry.NewNoOpProbe())
}

func (s *TodoServiceSuite) TearDownTest() {
	s.Notifier.Close()
}

func TestTodoServiceSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TodoServiceSuite))
}

func (s *TodoServiceSuite) newService() *service.TodoService {
	return service.NewTodoService(ctx, s.Storage, s.Notifier, telemetry.NewNoOpProbe())
}

func (s *TodoServiceSuite) seedCollection(todos ...domain.Todo) {
	payload, err := json.Marshal(todos)
	s.Require().NoError(err)

	s.Store.Seed(service.TodosKey, payload)
}

func (s *TodoServiceSuite) persistedTodos() []domain.Todo {
	var records []domain.Todo

	err := json.Unmarshal(s.Store.Value(service.TodosKey), &records)
	s.Require().NoError(err)

	return records
}

func existingTodo() domain.Todo {
	return factory.NewTodo[domain.Todo](map[string]any{
		"ID":          "1",
		"Title":       "Existing",
		"Description": "Already there",
		"Completed":   false,
		"CreatedAt":   time.Now().UTC(),
	})
}

func (s *TodoServiceSuite) TestHydrateFromStorage() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	Expect(svc.Len()).To(Equal(1))
	Expect(svc.Todos()[0].Title).To(Equal("Existing"))
}

func (s *TodoServiceSuite) TestHydrationDoesNotWriteBack() {
	s.seedCollection(existingTodo())

	s.newService()

	assert.Equal(s.T(), 0, s.Store.SetCalls)
}

func (s *TodoServiceSuite) TestAddTodoAppendsAndPersists() {
	s.seedCollection(existingTodo())

	svc := s.newService()
	todo := svc.AddTodo(ctx, "Test Todo", "Desc")

	assert.NotEmpty(s.T(), todo.ID)
	assert.False(s.T(), todo.Completed)
	assert.False(s.T(), todo.CreatedAt.IsZero())

	Expect(svc.Len()).To(Equal(2))
	Expect(svc.Todos()[1].Title).To(Equal("Test Todo"))

	// exactly one write, reflecting both records
	Expect(s.Store.SetCalls).To(Equal(1))
	Expect(s.persistedTodos()).To(HaveLen(2))
}

func (s *TodoServiceSuite) TestAddTodoAssignsUniqueIDs() {
	svc := s.newService()

	first := svc.AddTodo(ctx, "One", "")
	second := svc.AddTodo(ctx, "Two", "")

	Expect(first.ID).ToNot(Equal(second.ID))
}

func (s *TodoServiceSuite) TestEditTodoShallowMerge() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	title := "Renamed"
	updated, found := svc.EditTodo(ctx, "1", domain.TodoUpdates{Title: &title})

	Expect(found).To(BeTrue())
	Expect(updated.Title).To(Equal("Renamed"))

	// untouched fields are preserved
	Expect(updated.Description).To(Equal("Already there"))
	Expect(updated.Completed).To(BeFalse())
	Expect(updated.ID).To(Equal("1"))
}

func (s *TodoServiceSuite) TestEditTodoUnknownIDStillPersists() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	title := "Renamed"
	_, found := svc.EditTodo(ctx, "missing", domain.TodoUpdates{Title: &title})

	Expect(found).To(BeFalse())
	Expect(svc.Todos()[0].Title).To(Equal("Existing"))

	// a mutation attempt re-saves the unchanged collection
	Expect(s.Store.SetCalls).To(Equal(1))
	Expect(s.persistedTodos()).To(HaveLen(1))
}

func (s *TodoServiceSuite) TestToggleTodoCompletion() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	toggled, found := svc.ToggleTodoCompletion(ctx, "1")
	Expect(found).To(BeTrue())
	Expect(toggled.Completed).To(BeTrue())

	toggled, _ = svc.ToggleTodoCompletion(ctx, "1")
	Expect(toggled.Completed).To(BeFalse())

	Expect(s.Store.SetCalls).To(Equal(2))
}

func (s *TodoServiceSuite) TestToggleUnknownIDStillPersists() {
	svc := s.newService()

	_, found := svc.ToggleTodoCompletion(ctx, "missing")

	Expect(found).To(BeFalse())
	Expect(s.Store.SetCalls).To(Equal(1))
}

func (s *TodoServiceSuite) TestDeleteTodo() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	Expect(svc.DeleteTodo(ctx, "1")).To(BeTrue())
	Expect(svc.Len()).To(Equal(0))
	Expect(s.persistedTodos()).To(BeEmpty())
}

func (s *TodoServiceSuite) TestDeleteUnknownIDStillPersists() {
	s.seedCollection(existingTodo())

	svc := s.newService()

	Expect(svc.DeleteTodo(ctx, "missing")).To(BeFalse())
	Expect(svc.Len()).To(Equal(1))
	Expect(s.Store.SetCalls).To(Equal(1))
}

func (s *TodoServiceSuite) TestInsertionOrderSurvivesEdits() {
	svc := s.newService()

	svc.AddTodo(ctx, "first", "")
	middle := svc.AddTodo(ctx, "middle", "")
	svc.AddTodo(ctx, "last", "")

	completed := true
	svc.EditTodo(ctx, middle.ID, domain.TodoUpdates{Completed: &completed})

	todos := svc.Todos()
	Expect(todos[0].Title).To(Equal("first"))
	Expect(todos[1].Title).To(Equal("middle"))
	Expect(todos[2].Title).To(Equal("last"))
}

func (s *TodoServiceSuite) TestSaveFailureShowsWarningToast() {
	svc := s.newService()
	s.Store.SetErr = errors.New("write failed")

	svc.AddTodo(ctx, "doomed", "")

	// the in-memory mutation is kept
	Expect(svc.Len()).To(Equal(1))

	active := s.Notifier.Active()
	Expect(active).To(HaveLen(1))
	Expect(active[0].Severity).To(Equal(domain.SeverityWarning))
	Expect(active[0].Message).To(Equal(service.MsgSaveFailed))
}

func (s *TodoServiceSuite) TestQuotaFailureKeepsOperating() {
	svc := s.newService()
	s.Store.SetErr = port.ErrQuotaExceeded

	svc.AddTodo(ctx, "too big", "")

	active := s.Notifier.Active()
	Expect(active).To(HaveLen(1))
	Expect(active[0].Message).To(Equal(service.MsgQuotaExceeded))

	// once the store recovers, later mutations persist again
	s.Store.SetErr = nil
	svc.AddTodo(ctx, "fits now", "")

	Expect(svc.Len()).To(Equal(2))
	Expect(s.persistedTodos()).To(HaveLen(2))
}
