// Package billing defines invoices and their line items.
package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// LineItem is one row of an invoice. Amount is Quantity * UnitPrice, fixed
// when the invoice is created.
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

// Invoice represents a billing document. Subtotal, TaxAmount, and TotalAmount
// are snapshots computed exactly once at creation time from the line items
// and tax rate; they are authoritative thereafter and never re-derived, even
// if the invoice is updated.
type Invoice struct {
	ID          string
	Number      string
	ClientID    string
	Currency    domain.Currency
	LineItems   []LineItem
	TaxRate     float64 // percentage, e.g. 8 for 8%
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
	IssuedAt    time.Time
	DueAt       time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Key implements store.Record.
func (i Invoice) Key() string { return i.ID }

// Validate checks business rules for the Invoice entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (i *Invoice) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.Number) == "" {
		fields["number"] = domain.MsgRequired
	}
	if strings.TrimSpace(i.ClientID) == "" {
		fields["client_id"] = domain.MsgRequired
	}
	if !i.Currency.IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", i.Currency)
	}
	if len(i.LineItems) == 0 {
		fields["line_items"] = "must contain at least one item"
	}
	for idx, li := range i.LineItems {
		if strings.TrimSpace(li.Description) == "" {
			fields[fmt.Sprintf("line_items[%d].description", idx)] = domain.MsgRequired
		}
		if li.Quantity <= 0 {
			fields[fmt.Sprintf("line_items[%d].quantity", idx)] = fmt.Sprintf("must be positive, got %d", li.Quantity)
		}
		if li.UnitPrice < 0 {
			fields[fmt.Sprintf("line_items[%d].unit_price", idx)] = "must not be negative"
		}
	}
	if i.TaxRate < 0 || i.TaxRate > 100 {
		fields["tax_rate"] = fmt.Sprintf("must be 0-100, got %g", i.TaxRate)
	}
	if !i.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", i.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SnapshotTotals fills each line item's Amount and the invoice's Subtotal,
// TaxAmount, and TotalAmount from the line items and tax rate. It is called
// once at creation time; updates must not call it again.
func (i *Invoice) SnapshotTotals() {
	var subtotal float64
	for idx := range i.LineItems {
		li := &i.LineItems[idx]
		li.Amount = round2(float64(li.Quantity) * li.UnitPrice)
		subtotal += li.Amount
	}
	i.Subtotal = round2(subtotal)
	i.TaxAmount = round2(subtotal * i.TaxRate / 100)
	i.TotalAmount = round2(i.Subtotal + i.TaxAmount)
}

// round2 rounds to two decimal places, the precision all monetary snapshot
// values are stored at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
