package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that BillingService implements ports.BillingService.
var _ ports.BillingService = (*BillingService)(nil)

// BillingService implements ports.BillingService. Invoice totals are
// snapshot once at creation; no operation after Create recomputes them.
type BillingService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBillingService creates a BillingService.
func NewBillingService(st *store.Store, logger *slog.Logger) *BillingService {
	return &BillingService{store: st, logger: logger}
}

// List returns invoices matching the search term, in insertion order.
func (s *BillingService) List(_ context.Context, search string) ([]billing.Invoice, error) {
	all := s.store.Invoices.List()
	return store.Filter(all, func(inv billing.Invoice) bool {
		return store.MatchFold(search, inv.Number, inv.ClientID, inv.Currency.String())
	}), nil
}

// Get returns a single invoice by id.
func (s *BillingService) Get(_ context.Context, id string) (*billing.Invoice, error) {
	inv, err := s.store.Invoices.Get(id)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create validates the invoice, snapshots its monetary totals from the line
// items exactly once, and stores it as a draft against an existing client.
func (s *BillingService) Create(ctx context.Context, inv *billing.Invoice) (*billing.Invoice, error) {
	inv.Status = billing.StatusDraft
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.Clients.Get(inv.ClientID); err != nil {
		return nil, fmt.Errorf("client %s: %w", inv.ClientID, domain.ErrNotFound)
	}

	inv.SnapshotTotals()

	now := time.Now().UTC()
	inv.ID = s.store.NewID()
	if inv.IssuedAt.IsZero() {
		inv.IssuedAt = now
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if err := s.store.Invoices.Add(*inv); err != nil {
		s.logger.ErrorContext(ctx, "failed to create invoice",
			slog.String("operation", "CreateInvoice"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "invoice created",
		slog.String("invoice_id", inv.ID),
		slog.String("number", inv.Number),
		slog.String("currency", inv.Currency.String()),
		slog.Float64("total", inv.TotalAmount),
	)
	return inv, nil
}

// Update replaces an invoice's descriptive fields. The monetary snapshot
// (subtotal, tax, total, line-item amounts) and status are carried over from
// the stored record: totals are authoritative from creation time, and status
// moves only through SetStatus.
func (s *BillingService) Update(ctx context.Context, id string, inv *billing.Invoice) (*billing.Invoice, error) {
	existing, err := s.store.Invoices.Get(id)
	if err != nil {
		return nil, err
	}

	inv.ID = existing.ID
	inv.Status = existing.Status
	inv.Subtotal = existing.Subtotal
	inv.TaxAmount = existing.TaxAmount
	inv.TotalAmount = existing.TotalAmount
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now().UTC()

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Invoices.Update(*inv); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "invoice updated", slog.String("invoice_id", id))
	return inv, nil
}

// Delete removes an invoice by id.
func (s *BillingService) Delete(ctx context.Context, id string) error {
	if err := s.store.Invoices.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "invoice deleted", slog.String("invoice_id", id))
	return nil
}

// SetStatus applies one billing transition, enforcing the invoice
// transition table.
func (s *BillingService) SetStatus(ctx context.Context, id string, status billing.Status) (*billing.Invoice, error) {
	if !status.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", status),
		}}
	}

	inv, err := s.store.Invoices.Get(id)
	if err != nil {
		return nil, err
	}

	if !inv.Status.CanTransition(status) {
		return nil, fmt.Errorf("invoice %s is %s, cannot become %s: %w",
			id, inv.Status, status, domain.ErrConflict)
	}

	inv.Status = status
	inv.UpdatedAt = time.Now().UTC()

	if err := s.store.Invoices.Update(inv); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "invoice status changed",
		slog.String("operation", "SetInvoiceStatus"),
		slog.String("invoice_id", id),
		slog.String("status", status.String()),
	)
	return &inv, nil
}

// OutstandingTotals sums sent and overdue invoice totals, one figure per
// currency. USD and MVR (and EUR) amounts are never folded together.
func (s *BillingService) OutstandingTotals(_ context.Context) (map[domain.Currency]float64, error) {
	totals := make(map[domain.Currency]float64)
	for _, inv := range s.store.Invoices.List() {
		if inv.Status.Outstanding() {
			totals[inv.Currency] += inv.TotalAmount
		}
	}
	return totals, nil
}
