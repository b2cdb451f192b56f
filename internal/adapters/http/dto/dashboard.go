package dto

import "github.com/glowtours/backoffice/internal/ports"

// DashboardResponse represents the admin dashboard aggregates in HTTP
// responses. Count maps are keyed by status; money maps are keyed by
// currency and never merged across currencies.
type DashboardResponse struct {
	Candidates        map[string]int `json:"candidates"`
	Agents            map[string]int `json:"agents"`
	Applications      map[string]int `json:"applications"`
	Expenses          map[string]int `json:"expenses"`
	Invoices          map[string]int `json:"invoices"`
	OpenVacancies     int            `json:"open_vacancies"`
	PlacedWorkers     int            `json:"placed_workers"`
	ActiveSubscribers int            `json:"active_subscribers"`

	OutstandingInvoices map[string]float64 `json:"outstanding_invoices"`
	PaidInvoices        map[string]float64 `json:"paid_invoices"`
	ApprovedExpenses    map[string]float64 `json:"approved_expenses"`
	BudgetRemaining     map[string]float64 `json:"budget_remaining"`
}

// ToDashboardResponse converts a ports.DashboardSummary to an HTTP response
// DTO.
func ToDashboardResponse(s *ports.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Candidates:          s.Candidates,
		Agents:              s.Agents,
		Applications:        s.Applications,
		Expenses:            s.Expenses,
		Invoices:            s.Invoices,
		OpenVacancies:       s.OpenVacancies,
		PlacedWorkers:       s.PlacedWorkers,
		ActiveSubscribers:   s.ActiveSubscribers,
		OutstandingInvoices: ToCurrencyTotalsResponse(s.OutstandingInvoices).Totals,
		PaidInvoices:        ToCurrencyTotalsResponse(s.PaidInvoices).Totals,
		ApprovedExpenses:    ToCurrencyTotalsResponse(s.ApprovedExpenses).Totals,
		BudgetRemaining:     ToCurrencyTotalsResponse(s.BudgetRemaining).Totals,
	}
}
