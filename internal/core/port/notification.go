package port

import (
	"time"

	"todolist/internal/core/domain"
)

// Toaster is the single capability the core consumes from the notification
// layer. Zero values select the defaults: severity info, 5s duration.
type Toaster interface {
	ShowToast(message string, severity domain.Severity, duration time.Duration) domain.Notification
}

type NotificationService interface {
	Toaster

	// Dismiss removes a notification immediately, regardless of its scheduled
	// auto-removal. Dismissing an unknown id is a no-op.
	Dismiss(id string)
	Active() []domain.Notification
}
