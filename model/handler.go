package model

// HandlerState describes where a handler is in its lifecycle
type HandlerState int

const (
	// StateRegistered means the handler is live and will fire on the next drain
	StateRegistered HandlerState = iota
	// StateRun means the handler was removed and its callback was invoked
	StateRun
	// StateCancelled means the handler was removed without invoking its callback,
	// either explicitly or because a dedup sibling was still registered
	StateCancelled
)

// String returns a human-readable state name
func (s HandlerState) String() string {
	switch s {
	case StateRegistered:
		return "registered"
	case StateRun:
		return "run"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// HandlerInfo is a read-only diagnostics view of one registered handler
type HandlerInfo struct {
	ID    uint64       `json:"id"`
	Key   string       `json:"key,omitempty"`
	State HandlerState `json:"state"`
}
