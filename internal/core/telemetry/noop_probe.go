package telemetry

import "todolist/internal/core/port"

// NoOpProbe implements Probe with no operations - useful for testing or when
// telemetry is disabled.
type NoOpProbe struct{}

func NewNoOpProbe() port.Probe {
	return &NoOpProbe{}
}

func (p *NoOpProbe) RecordTodoOperation(operation string) {}

func (p *NoOpProbe) RecordLoad(outcome string) {}

func (p *NoOpProbe) RecordSave(outcome string) {}

func (p *NoOpProbe) RecordToast(severity string) {}
