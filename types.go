package herald

// Priority determines handler execution order within an event.
// Higher values execute first.
type Priority int

const (
	// PriorityHighest is for handlers that must observe a broadcast
	// before anything else runs (state keepers, validators).
	PriorityHighest Priority = 1000

	// PriorityHigh is for handlers that react ahead of the default tier.
	PriorityHigh Priority = 500

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 0

	// PriorityLow is for handlers that should run after the default tier.
	PriorityLow Priority = -500

	// PriorityLowest is for metrics and logging handlers that run last.
	PriorityLowest Priority = -1000
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p >= PriorityHighest:
		return "highest"
	case p >= PriorityHigh:
		return "high"
	case p >= PriorityNormal:
		return "normal"
	case p >= PriorityLow:
		return "low"
	default:
		return "lowest"
	}
}

// Stats contains counters for a single event.
type Stats struct {
	// Broadcasts is the number of broadcasts that found at least one
	// subscriber. Broadcasts on an empty event are not counted.
	Broadcasts uint64

	// HandlerCalls is the total number of handler invocations across
	// all broadcasts.
	HandlerCalls uint64

	// HandlerErrors is the number of handler invocations that returned
	// a non-nil error.
	HandlerErrors uint64

	// TypeMismatches is the number of broadcasts rejected because the
	// payload was not of the event's expected type.
	TypeMismatches uint64
}
