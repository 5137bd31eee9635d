package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

const DefaultToastDuration = 5 * time.Second

// Notifier keeps the ordered list of active toasts. Each toast carries its
// own auto-removal timer; removal happens via explicit Dismiss or natural
// timer expiry, never as a side effect of unrelated state changes.
type Notifier struct {
	defaultDuration time.Duration
	logger          zerolog.Logger
	probe           port.Probe

	mu     sync.Mutex
	active []domain.Notification
	timers map[string]*time.Timer
}

func NewNotifier(defaultDuration time.Duration, logger zerolog.Logger, probe port.Probe) *Notifier {
	if defaultDuration <= 0 {
		defaultDuration = DefaultToastDuration
	}

	return &Notifier{
		defaultDuration: defaultDuration,
		logger:          logger,
		probe:           probe,
		active:          []domain.Notification{},
		timers:          map[string]*time.Timer{},
	}
}

func (n *Notifier) ShowToast(message string, severity domain.Severity, duration time.Duration) domain.Notification {
	if !severity.Valid() {
		severity = domain.SeverityInfo
	}

	if duration <= 0 {
		duration = n.defaultDuration
	}

	toast := domain.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.active = append(n.active, toast)
	n.timers[toast.ID] = time.AfterFunc(duration, func() {
		n.Dismiss(toast.ID)
	})
	n.mu.Unlock()

	n.logger.Debug().
		Str("severity", string(severity)).
		Dur("duration", duration).
		Msg("toast shown")

	n.probe.RecordToast(string(severity))

	return toast
}

func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}

	for i, toast := range n.active {
		if toast.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			break
		}
	}
}

// Active returns the current toasts in creation order.
func (n *Notifier) Active() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]domain.Notification, len(n.active))
	copy(out, n.active)

	return out
}

// Close stops all pending auto-removal timers.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}

	n.active = n.active[:0]
}
