// Package finance defines budgets and the expenses drawn against them.
package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Budget tracks an allocation for a spending category. Spent and Remaining
// are reconciled by the expense-approval flow: approving an expense debits
// Spent and recomputes Remaining atomically with the status change.
type Budget struct {
	ID        string
	Name      string
	Category  string
	Currency  domain.Currency
	Allocated float64
	Spent     float64
	Remaining float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (b Budget) Key() string { return b.ID }

// Validate checks business rules for the Budget entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (b *Budget) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !b.Currency.IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", b.Currency)
	}
	if b.Allocated < 0 {
		fields["allocated"] = "must not be negative"
	}
	if b.Spent < 0 {
		fields["spent"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// WouldExceed reports whether spending amount on top of the current Spent
// figure would breach the allocation.
func (b *Budget) WouldExceed(amount float64) bool {
	return b.Spent+amount > b.Allocated
}
