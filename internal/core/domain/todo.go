package domain

import "time"

// Todo is a single task record. The whole collection is persisted as one
// JSON array under a fixed storage key; ids are unique within the collection
// and the order is insertion order (updates and deletions never reorder).
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TodoUpdates carries the fields an edit may override. Nil fields keep the
// existing value. The id is deliberately not part of the update set, so an
// edit can never change a record's identity.
type TodoUpdates struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Merge returns a copy of the todo with the non-nil update fields applied.
func (t Todo) Merge(updates TodoUpdates) Todo {
	merged := t

	if updates.Title != nil {
		merged.Title = *updates.Title
	}

	if updates.Description != nil {
		merged.Description = *updates.Description
	}

	if updates.Completed != nil {
		merged.Completed = *updates.Completed
	}

	return merged
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"createdAt":   t.CreatedAt,
	}
}
