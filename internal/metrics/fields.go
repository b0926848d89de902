package metrics

// DefaultServiceName names the meter and resource when none is configured.
const DefaultServiceName = "worldcup-stats-service"

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrAction   = "action"
	AttrOutcome  = "outcome"
)

// Table actions and outcomes.
const (
	ActionToggle = "toggle"
	ActionReset  = "reset"

	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)
