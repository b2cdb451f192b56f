package billing_test

import (
	"testing"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/billing"
)

func TestSnapshotTotals(t *testing.T) {
	t.Parallel()

	inv := &billing.Invoice{
		Currency: domain.CurrencyUSD,
		TaxRate:  8,
		LineItems: []billing.LineItem{
			{Description: "Placement fee", Quantity: 2, UnitPrice: 450.50},
			{Description: "Visa processing", Quantity: 1, UnitPrice: 120},
		},
	}

	inv.SnapshotTotals()

	if inv.LineItems[0].Amount != 901.00 {
		t.Errorf("LineItems[0].Amount = %g, want 901.00", inv.LineItems[0].Amount)
	}
	if inv.LineItems[1].Amount != 120.00 {
		t.Errorf("LineItems[1].Amount = %g, want 120.00", inv.LineItems[1].Amount)
	}
	if inv.Subtotal != 1021.00 {
		t.Errorf("Subtotal = %g, want 1021.00", inv.Subtotal)
	}
	if inv.TaxAmount != 81.68 {
		t.Errorf("TaxAmount = %g, want 81.68", inv.TaxAmount)
	}
	if inv.TotalAmount != 1102.68 {
		t.Errorf("TotalAmount = %g, want 1102.68", inv.TotalAmount)
	}
}

func TestSnapshotTotals_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	inv := &billing.Invoice{
		TaxRate: 7.5,
		LineItems: []billing.LineItem{
			{Description: "Service", Quantity: 3, UnitPrice: 33.333},
		},
	}

	inv.SnapshotTotals()

	// 3 * 33.333 = 99.999, rounded to 100.00.
	if inv.LineItems[0].Amount != 100.00 {
		t.Errorf("Amount = %g, want 100.00", inv.LineItems[0].Amount)
	}
	if inv.TaxAmount != 7.50 {
		t.Errorf("TaxAmount = %g, want 7.50", inv.TaxAmount)
	}
	if inv.TotalAmount != 107.50 {
		t.Errorf("TotalAmount = %g, want 107.50", inv.TotalAmount)
	}
}

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to billing.Status
		want     bool
	}{
		{billing.StatusDraft, billing.StatusSent, true},
		{billing.StatusDraft, billing.StatusCancelled, true},
		{billing.StatusSent, billing.StatusPaid, true},
		{billing.StatusSent, billing.StatusOverdue, true},
		{billing.StatusSent, billing.StatusDisputed, true},
		{billing.StatusSent, billing.StatusCancelled, true},
		{billing.StatusOverdue, billing.StatusPaid, true},
		{billing.StatusOverdue, billing.StatusDisputed, true},
		{billing.StatusDisputed, billing.StatusPaid, true},
		{billing.StatusDisputed, billing.StatusCancelled, true},

		{billing.StatusDraft, billing.StatusPaid, false},
		{billing.StatusDraft, billing.StatusOverdue, false},
		{billing.StatusOverdue, billing.StatusCancelled, false},
		{billing.StatusPaid, billing.StatusSent, false},
		{billing.StatusPaid, billing.StatusDisputed, false},
		{billing.StatusCancelled, billing.StatusDraft, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatus_Outstanding(t *testing.T) {
	t.Parallel()

	outstanding := map[billing.Status]bool{
		billing.StatusDraft:     false,
		billing.StatusSent:      true,
		billing.StatusPaid:      false,
		billing.StatusOverdue:   true,
		billing.StatusCancelled: false,
		billing.StatusDisputed:  false,
	}
	for s, want := range outstanding {
		if got := s.Outstanding(); got != want {
			t.Errorf("%s.Outstanding() = %v, want %v", s, got, want)
		}
	}
}

func TestInvoice_Validate(t *testing.T) {
	t.Parallel()

	valid := &billing.Invoice{
		Number:   "INV-001",
		ClientID: "client-1",
		Currency: domain.CurrencyUSD,
		Status:   billing.StatusDraft,
		LineItems: []billing.LineItem{
			{Description: "Placement fee", Quantity: 1, UnitPrice: 500},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error for valid invoice: %v", err)
	}

	noItems := *valid
	noItems.LineItems = nil
	if err := noItems.Validate(); err == nil {
		t.Error("Validate() = nil for invoice without line items, want error")
	}

	badQty := *valid
	badQty.LineItems = []billing.LineItem{{Description: "Fee", Quantity: 0, UnitPrice: 500}}
	if err := badQty.Validate(); err == nil {
		t.Error("Validate() = nil for zero quantity, want error")
	}

	badRate := *valid
	badRate.TaxRate = 150
	if err := badRate.Validate(); err == nil {
		t.Error("Validate() = nil for tax rate above 100, want error")
	}
}
