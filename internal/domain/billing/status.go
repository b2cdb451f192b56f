package billing

// Status represents an invoice's billing state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
	StatusDisputed  Status = "disputed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled, StatusDisputed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is an allowed billing
// step. Paid and cancelled are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusSent || next == StatusCancelled
	case StatusSent:
		return next == StatusPaid || next == StatusOverdue || next == StatusDisputed || next == StatusCancelled
	case StatusOverdue:
		return next == StatusPaid || next == StatusDisputed
	case StatusDisputed:
		return next == StatusPaid || next == StatusCancelled
	default:
		return false
	}
}

// Outstanding reports whether an invoice in this state still counts toward
// the receivable totals on the dashboard.
func (s Status) Outstanding() bool {
	return s == StatusSent || s == StatusOverdue
}
