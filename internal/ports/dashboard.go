package ports

import (
	"context"

	"github.com/glowtours/backoffice/internal/domain"
)

// DashboardSummary holds the derived aggregates shown on the admin
// dashboard. Every figure is computed from the live collections on each
// request; nothing is cached or maintained incrementally. Monetary maps are
// keyed by currency and never merged across currencies.
type DashboardSummary struct {
	Candidates        map[string]int
	Agents            map[string]int
	Applications      map[string]int
	Expenses          map[string]int
	Invoices          map[string]int
	OpenVacancies     int
	PlacedWorkers     int
	ActiveSubscribers int

	OutstandingInvoices map[domain.Currency]float64
	PaidInvoices        map[domain.Currency]float64
	ApprovedExpenses    map[domain.Currency]float64
	BudgetRemaining     map[domain.Currency]float64
}

// DashboardService computes the admin dashboard aggregates.
type DashboardService interface {
	// Summary filters and reduces the entity collections into the
	// dashboard figures.
	Summary(ctx context.Context) (*DashboardSummary, error)
}
