package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Expense represents a spend record drawn against a budget. PolicyViolation
// is set once at creation when the projected spend breaches the linked
// budget's allocation; it is never recomputed afterwards.
type Expense struct {
	ID              string
	BudgetID        string
	Description     string
	Amount          float64
	Currency        domain.Currency
	IncurredAt      time.Time
	Receipt         string // data URL, optional
	Status          ExpenseStatus
	PolicyViolation string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Key implements store.Record.
func (e Expense) Key() string { return e.ID }

// Validate checks business rules for the Expense entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (e *Expense) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.BudgetID) == "" {
		fields["budget_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if e.Amount <= 0 {
		fields["amount"] = fmt.Sprintf("must be positive, got %g", e.Amount)
	}
	if !e.Currency.IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", e.Currency)
	}
	if !e.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", e.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ExpenseStatus represents an expense's approval state.
type ExpenseStatus string

const (
	ExpensePending    ExpenseStatus = "pending"
	ExpenseApproved   ExpenseStatus = "approved"
	ExpenseRejected   ExpenseStatus = "rejected"
	ExpenseReimbursed ExpenseStatus = "reimbursed"
	ExpenseFlagged    ExpenseStatus = "flagged"
)

// IsValid returns true if the status is one of the defined constants.
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpensePending, ExpenseApproved, ExpenseRejected, ExpenseReimbursed, ExpenseFlagged:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ExpenseStatus) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is an allowed approval
// step. Pending and flagged expenses may be approved or rejected; approved
// expenses may be reimbursed. Rejected and reimbursed are terminal.
func (s ExpenseStatus) CanTransition(next ExpenseStatus) bool {
	switch s {
	case ExpensePending, ExpenseFlagged:
		return next == ExpenseApproved || next == ExpenseRejected
	case ExpenseApproved:
		return next == ExpenseReimbursed
	default:
		return false
	}
}
