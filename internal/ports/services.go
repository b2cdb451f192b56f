package ports

import (
	"context"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/agent"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/domain/candidate"
	"github.com/glowtours/backoffice/internal/domain/client"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/domain/recruited"
)

// CandidateService defines the service port for recruitment-pipeline
// candidates. Implemented by the application layer; called by handlers.
type CandidateService interface {
	// List returns candidates whose name, email, position, or nationality
	// contains search as a case-insensitive substring. An empty search
	// returns the full collection in insertion order.
	List(ctx context.Context, search string) ([]candidate.Candidate, error)

	// Get returns a single candidate by id.
	// Returns domain.ErrNotFound if the candidate does not exist.
	Get(ctx context.Context, id string) (*candidate.Candidate, error)

	// Create validates and stores a new candidate, returning the created
	// entity with store-assigned id and timestamps.
	Create(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error)

	// Update replaces all fields of an existing candidate.
	// Returns domain.ErrNotFound if the candidate does not exist.
	Update(ctx context.Context, id string, c *candidate.Candidate) (*candidate.Candidate, error)

	// Delete removes a candidate by id.
	// Returns domain.ErrNotFound if the candidate does not exist.
	Delete(ctx context.Context, id string) error
}

// AgentService defines the service port for partner agents. Status moves
// only through the approve/suspend/reactivate workflow operations; Update
// never changes status.
type AgentService interface {
	List(ctx context.Context, search string) ([]agent.Agent, error)
	Get(ctx context.Context, id string) (*agent.Agent, error)
	Create(ctx context.Context, a *agent.Agent) (*agent.Agent, error)
	Update(ctx context.Context, id string, a *agent.Agent) (*agent.Agent, error)
	Delete(ctx context.Context, id string) error

	// Approve activates a pending agent.
	// Returns domain.ErrConflict if the agent is not pending.
	Approve(ctx context.Context, id string) (*agent.Agent, error)

	// Suspend suspends an active agent.
	// Returns domain.ErrConflict if the agent is not active.
	Suspend(ctx context.Context, id string) (*agent.Agent, error)

	// Reactivate re-activates a suspended agent.
	// Returns domain.ErrConflict if the agent is not suspended.
	Reactivate(ctx context.Context, id string) (*agent.Agent, error)
}

// ClientService defines the service port for corporate customers.
type ClientService interface {
	List(ctx context.Context, search string) ([]client.Client, error)
	Get(ctx context.Context, id string) (*client.Client, error)
	Create(ctx context.Context, c *client.Client) (*client.Client, error)
	Update(ctx context.Context, id string, c *client.Client) (*client.Client, error)
	Delete(ctx context.Context, id string) error

	// Verify checks the client's registry number against the company
	// registry and, on a positive match, marks the client verified and
	// active. Returns domain.ErrUnavailable when the registry cannot be
	// reached.
	Verify(ctx context.Context, id string) (*client.Client, error)
}

// JobService defines the service port for vacancies and applications.
type JobService interface {
	ListVacancies(ctx context.Context, search string) ([]job.Vacancy, error)
	GetVacancy(ctx context.Context, id string) (*job.Vacancy, error)
	CreateVacancy(ctx context.Context, v *job.Vacancy) (*job.Vacancy, error)
	UpdateVacancy(ctx context.Context, id string, v *job.Vacancy) (*job.Vacancy, error)

	// DeleteVacancy removes a vacancy. Applications referencing it are
	// intentionally preserved.
	DeleteVacancy(ctx context.Context, id string) error

	// ListApplications returns applications sorted by AppliedAt descending,
	// optionally narrowed to one vacancy and/or a search term.
	ListApplications(ctx context.Context, vacancyID, search string) ([]job.Application, error)
	GetApplication(ctx context.Context, id string) (*job.Application, error)

	// CreateApplication validates and stores a new application with status
	// "new". Returns domain.ErrNotFound if the vacancy does not exist and
	// domain.ErrConflict if it is closed.
	CreateApplication(ctx context.Context, a *job.Application) (*job.Application, error)
	DeleteApplication(ctx context.Context, id string) error

	// SetApplicationStatus applies one forward-only review transition.
	// Returns domain.ErrConflict if the transition is not allowed from the
	// application's current status.
	SetApplicationStatus(ctx context.Context, id string, status job.ApplicationStatus) (*job.Application, error)
}

// PlacementService defines the service port for recruited-worker records
// and their CSV export.
type PlacementService interface {
	List(ctx context.Context, search string) ([]recruited.Worker, error)
	Get(ctx context.Context, id string) (*recruited.Worker, error)
	Create(ctx context.Context, w *recruited.Worker) (*recruited.Worker, error)
	Update(ctx context.Context, id string, w *recruited.Worker) (*recruited.Worker, error)
	Delete(ctx context.Context, id string) error

	// ExportCSV renders every worker record as CSV: a header line plus one
	// row per worker, every field double-quote wrapped. The returned
	// filename embeds the current date.
	ExportCSV(ctx context.Context) (filename string, data []byte, err error)
}

// BillingService defines the service port for invoices.
type BillingService interface {
	List(ctx context.Context, search string) ([]billing.Invoice, error)
	Get(ctx context.Context, id string) (*billing.Invoice, error)

	// Create validates the invoice, snapshots subtotal/tax/total from its
	// line items exactly once, and stores it as a draft.
	Create(ctx context.Context, inv *billing.Invoice) (*billing.Invoice, error)

	// Update replaces an invoice's fields without recomputing the monetary
	// snapshot; totals remain authoritative from creation time.
	Update(ctx context.Context, id string, inv *billing.Invoice) (*billing.Invoice, error)
	Delete(ctx context.Context, id string) error

	// SetStatus applies one billing transition (draft→sent, sent→paid, ...).
	// Returns domain.ErrConflict if the transition is not allowed.
	SetStatus(ctx context.Context, id string, status billing.Status) (*billing.Invoice, error)

	// OutstandingTotals sums sent and overdue invoice totals per currency.
	// Currencies are never merged into a single figure.
	OutstandingTotals(ctx context.Context) (map[domain.Currency]float64, error)
}

// FinanceService defines the service port for budgets and expenses.
type FinanceService interface {
	ListBudgets(ctx context.Context, search string) ([]finance.Budget, error)
	GetBudget(ctx context.Context, id string) (*finance.Budget, error)
	CreateBudget(ctx context.Context, b *finance.Budget) (*finance.Budget, error)
	UpdateBudget(ctx context.Context, id string, b *finance.Budget) (*finance.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	ListExpenses(ctx context.Context, search string) ([]finance.Expense, error)
	GetExpense(ctx context.Context, id string) (*finance.Expense, error)

	// CreateExpense stores a new expense as "pending", or as "flagged" with
	// PolicyViolation populated when the amount would push the linked
	// budget past its allocation. Returns domain.ErrNotFound if the budget
	// does not exist.
	CreateExpense(ctx context.Context, e *finance.Expense) (*finance.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	// ApproveExpense marks a pending or flagged expense approved and debits
	// the linked budget's spent/remaining figures. The two writes are
	// staged together; if either fails the other is rolled back.
	ApproveExpense(ctx context.Context, id string) (*finance.Expense, error)

	// RejectExpense marks a pending or flagged expense rejected.
	RejectExpense(ctx context.Context, id string) (*finance.Expense, error)

	// ReimburseExpense marks an approved expense reimbursed.
	ReimburseExpense(ctx context.Context, id string) (*finance.Expense, error)

	// ApprovedTotals sums approved and reimbursed expense amounts per
	// currency. Currencies are never merged into a single figure.
	ApprovedTotals(ctx context.Context) (map[domain.Currency]float64, error)
}
