// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Public     *handlers.PublicHandler
	Candidates *handlers.CandidateHandler
	Agents     *handlers.AgentHandler
	Clients    *handlers.ClientHandler
	Jobs       *handlers.JobHandler
	Placements *handlers.PlacementHandler
	Billing    *handlers.BillingHandler
	Finance    *handlers.FinanceHandler
	Content    *handlers.ContentHandler
	Dashboard  *handlers.DashboardHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the API prefixes).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// Public marketing routes. No auth, read-mostly.
	r.Route("/public", func(r chi.Router) {
		r.Get("/vacancies", h.Public.Vacancies)
		r.Post("/applications", h.Public.Apply)
		r.Get("/posts", h.Public.Posts)
		r.Get("/pages/{slug}", h.Public.PageBySlug)
		r.Get("/team", h.Public.Team)
		r.Get("/testimonials", h.Public.Testimonials)
		r.Post("/newsletter", h.Public.Subscribe)
	})

	// Admin API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard.Summary)

		r.Get("/candidates", h.Candidates.List)
		r.Post("/candidates", h.Candidates.Create)
		r.Get("/candidates/{id}", h.Candidates.Get)
		r.Put("/candidates/{id}", h.Candidates.Update)
		r.Delete("/candidates/{id}", h.Candidates.Delete)
		r.Get("/candidates/{id}/resume", h.Candidates.Resume)

		r.Get("/agents", h.Agents.List)
		r.Post("/agents", h.Agents.Create)
		r.Get("/agents/{id}", h.Agents.Get)
		r.Put("/agents/{id}", h.Agents.Update)
		r.Delete("/agents/{id}", h.Agents.Delete)
		r.Post("/agents/{id}/approve", h.Agents.Approve)
		r.Post("/agents/{id}/suspend", h.Agents.Suspend)
		r.Post("/agents/{id}/reactivate", h.Agents.Reactivate)

		r.Get("/clients", h.Clients.List)
		r.Post("/clients", h.Clients.Create)
		r.Get("/clients/{id}", h.Clients.Get)
		r.Put("/clients/{id}", h.Clients.Update)
		r.Delete("/clients/{id}", h.Clients.Delete)
		r.Post("/clients/{id}/verify", h.Clients.Verify)

		r.Get("/vacancies", h.Jobs.ListVacancies)
		r.Post("/vacancies", h.Jobs.CreateVacancy)
		r.Get("/vacancies/{id}", h.Jobs.GetVacancy)
		r.Put("/vacancies/{id}", h.Jobs.UpdateVacancy)
		r.Delete("/vacancies/{id}", h.Jobs.DeleteVacancy)

		r.Get("/applications", h.Jobs.ListApplications)
		r.Post("/applications", h.Jobs.CreateApplication)
		r.Get("/applications/{id}", h.Jobs.GetApplication)
		r.Delete("/applications/{id}", h.Jobs.DeleteApplication)
		r.Post("/applications/{id}/status", h.Jobs.SetApplicationStatus)
		r.Get("/applications/{id}/resume", h.Jobs.ApplicationResume)

		// Export before {id} so "export" is not captured as an id.
		r.Get("/workers/export", h.Placements.Export)
		r.Get("/workers", h.Placements.List)
		r.Post("/workers", h.Placements.Create)
		r.Get("/workers/{id}", h.Placements.Get)
		r.Put("/workers/{id}", h.Placements.Update)
		r.Delete("/workers/{id}", h.Placements.Delete)
		r.Get("/workers/{id}/photo", h.Placements.Photo)
		r.Get("/workers/{id}/permit", h.Placements.Permit)

		r.Get("/invoices/outstanding", h.Billing.Outstanding)
		r.Get("/invoices", h.Billing.List)
		r.Post("/invoices", h.Billing.Create)
		r.Get("/invoices/{id}", h.Billing.Get)
		r.Put("/invoices/{id}", h.Billing.Update)
		r.Delete("/invoices/{id}", h.Billing.Delete)
		r.Post("/invoices/{id}/status", h.Billing.SetStatus)

		r.Get("/budgets", h.Finance.ListBudgets)
		r.Post("/budgets", h.Finance.CreateBudget)
		r.Get("/budgets/{id}", h.Finance.GetBudget)
		r.Put("/budgets/{id}", h.Finance.UpdateBudget)
		r.Delete("/budgets/{id}", h.Finance.DeleteBudget)

		r.Get("/expenses/approved-totals", h.Finance.ApprovedTotals)
		r.Get("/expenses", h.Finance.ListExpenses)
		r.Post("/expenses", h.Finance.CreateExpense)
		r.Get("/expenses/{id}", h.Finance.GetExpense)
		r.Delete("/expenses/{id}", h.Finance.DeleteExpense)
		r.Post("/expenses/{id}/approve", h.Finance.ApproveExpense)
		r.Post("/expenses/{id}/reject", h.Finance.RejectExpense)
		r.Post("/expenses/{id}/reimburse", h.Finance.ReimburseExpense)
		r.Get("/expenses/{id}/receipt", h.Finance.ExpenseReceipt)

		r.Get("/posts", h.Content.ListPosts)
		r.Post("/posts", h.Content.CreatePost)
		r.Get("/posts/{id}", h.Content.GetPost)
		r.Put("/posts/{id}", h.Content.UpdatePost)
		r.Delete("/posts/{id}", h.Content.DeletePost)

		r.Get("/pages", h.Content.ListPages)
		r.Post("/pages", h.Content.CreatePage)
		r.Get("/pages/{id}", h.Content.GetPage)
		r.Put("/pages/{id}", h.Content.UpdatePage)
		r.Delete("/pages/{id}", h.Content.DeletePage)
		r.Post("/pages/{id}/blocks/move", h.Content.MoveBlock)

		r.Get("/team", h.Content.ListTeam)
		r.Post("/team", h.Content.CreateTeamMember)
		r.Get("/team/{id}", h.Content.GetTeamMember)
		r.Put("/team/{id}", h.Content.UpdateTeamMember)
		r.Delete("/team/{id}", h.Content.DeleteTeamMember)

		r.Get("/testimonials", h.Content.ListTestimonials)
		r.Post("/testimonials", h.Content.CreateTestimonial)
		r.Put("/testimonials/{id}", h.Content.UpdateTestimonial)
		r.Delete("/testimonials/{id}", h.Content.DeleteTestimonial)
		r.Post("/testimonials/{id}/approve", h.Content.ApproveTestimonial)

		r.Get("/subscribers", h.Content.ListSubscribers)
		r.Post("/subscribers/unsubscribe", h.Content.Unsubscribe)
	})

	return r
}
