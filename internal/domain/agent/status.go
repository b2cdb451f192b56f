package agent

// Status represents an agent's portal-access state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is an allowed workflow
// step: pending agents are approved to active, active agents may be
// suspended, and suspended agents may be reactivated.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusActive
	case StatusActive:
		return next == StatusSuspended
	case StatusSuspended:
		return next == StatusActive
	default:
		return false
	}
}
