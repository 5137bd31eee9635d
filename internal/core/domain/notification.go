package domain

import "time"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeveritySuccess, SeverityInfo:
		return true
	default:
		return false
	}
}

// Notification is a transient toast. Notifications are independent of each
// other: no deduplication, no stacking limit, display order is creation order.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  Severity      `json:"severity"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}
