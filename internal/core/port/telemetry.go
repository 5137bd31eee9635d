package port

// Probe lets the core emit telemetry events without knowing the
// implementation. Tests and library embedders use the no-op probe.
type Probe interface {
	RecordTodoOperation(operation string)
	RecordLoad(outcome string)
	RecordSave(outcome string)
	RecordToast(severity string)
}

// Load outcomes.
const (
	LoadOK      = "ok"
	LoadEmpty   = "empty"
	LoadError   = "error"
	LoadCorrupt = "corrupt"
	LoadInvalid = "invalid"
)

// Save outcomes.
const (
	SaveOK      = "ok"
	SaveQuota   = "quota_exceeded"
	SaveFailure = "failure"
)
