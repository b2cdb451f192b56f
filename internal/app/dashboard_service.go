package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glowtours/backoffice/internal/app/fanout"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/domain/content"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// dashboardWorkers bounds the concurrent collection scans per summary.
const dashboardWorkers = 4

// DashboardService computes the admin dashboard aggregates. Every figure is
// re-derived from the live collections on each call; each section scans one
// collection, and the sections fan out across a bounded worker pool.
type DashboardService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(st *store.Store, logger *slog.Logger) *DashboardService {
	return &DashboardService{store: st, logger: logger}
}

// section computes one part of the summary and returns a function that
// writes it into the result. The write happens after all sections complete,
// so sections never contend on the summary itself.
type section func(ctx context.Context) (func(*ports.DashboardSummary), error)

// Summary filters and reduces the entity collections into the dashboard
// figures.
func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	sections := []section{
		s.candidateCounts,
		s.agentCounts,
		s.applicationCounts,
		s.vacancyAndPlacementCounts,
		s.invoiceFigures,
		s.financeFigures,
	}

	results := fanout.Run(ctx, dashboardWorkers, sections, func(ctx context.Context, fn section) (func(*ports.DashboardSummary), error) {
		return fn(ctx)
	})

	summary := &ports.DashboardSummary{}
	for i, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "dashboard section failed",
				slog.String("operation", "Summary"),
				slog.Int("section", i),
				slog.Any("error", r.Err),
			)
			return nil, fmt.Errorf("computing dashboard section %d: %w", i, r.Err)
		}
		r.Value(summary)
	}

	return summary, nil
}

func (s *DashboardService) candidateCounts(context.Context) (func(*ports.DashboardSummary), error) {
	counts := make(map[string]int)
	for _, c := range s.store.Candidates.List() {
		counts[c.Status.String()]++
	}
	return func(sum *ports.DashboardSummary) { sum.Candidates = counts }, nil
}

func (s *DashboardService) agentCounts(context.Context) (func(*ports.DashboardSummary), error) {
	counts := make(map[string]int)
	for _, a := range s.store.Agents.List() {
		counts[a.Status.String()]++
	}
	return func(sum *ports.DashboardSummary) { sum.Agents = counts }, nil
}

func (s *DashboardService) applicationCounts(context.Context) (func(*ports.DashboardSummary), error) {
	counts := make(map[string]int)
	for _, a := range s.store.Applications.List() {
		counts[a.Status.String()]++
	}
	return func(sum *ports.DashboardSummary) { sum.Applications = counts }, nil
}

func (s *DashboardService) vacancyAndPlacementCounts(context.Context) (func(*ports.DashboardSummary), error) {
	var open int
	for _, v := range s.store.Vacancies.List() {
		if v.Status == job.VacancyOpen {
			open++
		}
	}
	workers := s.store.Workers.Len()

	var active int
	for _, sub := range s.store.Subscribers.List() {
		if sub.Status == content.Subscribed {
			active++
		}
	}

	return func(sum *ports.DashboardSummary) {
		sum.OpenVacancies = open
		sum.PlacedWorkers = workers
		sum.ActiveSubscribers = active
	}, nil
}

func (s *DashboardService) invoiceFigures(context.Context) (func(*ports.DashboardSummary), error) {
	counts := make(map[string]int)
	outstanding := make(map[domain.Currency]float64)
	paid := make(map[domain.Currency]float64)

	for _, inv := range s.store.Invoices.List() {
		counts[inv.Status.String()]++
		if inv.Status.Outstanding() {
			outstanding[inv.Currency] += inv.TotalAmount
		}
		if inv.Status == billing.StatusPaid {
			paid[inv.Currency] += inv.TotalAmount
		}
	}

	return func(sum *ports.DashboardSummary) {
		sum.Invoices = counts
		sum.OutstandingInvoices = outstanding
		sum.PaidInvoices = paid
	}, nil
}

func (s *DashboardService) financeFigures(context.Context) (func(*ports.DashboardSummary), error) {
	counts := make(map[string]int)
	approved := make(map[domain.Currency]float64)
	remaining := make(map[domain.Currency]float64)

	for _, e := range s.store.Expenses.List() {
		counts[e.Status.String()]++
		if e.Status == finance.ExpenseApproved || e.Status == finance.ExpenseReimbursed {
			approved[e.Currency] += e.Amount
		}
	}
	for _, b := range s.store.Budgets.List() {
		remaining[b.Currency] += b.Remaining
	}

	return func(sum *ports.DashboardSummary) {
		sum.Expenses = counts
		sum.ApprovedExpenses = approved
		sum.BudgetRemaining = remaining
	}, nil
}
