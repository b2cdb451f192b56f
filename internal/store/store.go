package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/glowtours/backoffice/internal/domain/agent"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/domain/candidate"
	"github.com/glowtours/backoffice/internal/domain/client"
	"github.com/glowtours/backoffice/internal/domain/content"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/domain/recruited"
)

// Store aggregates one collection per entity type. It is the sole owner of
// all entity data; services receive it by injection and are the only
// permitted mutators. There are no cross-collection transactions; flows
// that touch two collections stage actions through appctx instead.
type Store struct {
	Candidates   *Collection[candidate.Candidate]
	Agents       *Collection[agent.Agent]
	Clients      *Collection[client.Client]
	Vacancies    *Collection[job.Vacancy]
	Applications *Collection[job.Application]
	Workers      *Collection[recruited.Worker]
	Invoices     *Collection[billing.Invoice]
	Budgets      *Collection[finance.Budget]
	Expenses     *Collection[finance.Expense]
	Posts        *Collection[content.Post]
	Pages        *Collection[content.Page]
	TeamMembers  *Collection[content.TeamMember]
	Testimonials *Collection[content.Testimonial]
	Subscribers  *Collection[content.Subscriber]
}

// New creates a Store with empty collections.
func New() *Store {
	return &Store{
		Candidates:   NewCollection[candidate.Candidate](),
		Agents:       NewCollection[agent.Agent](),
		Clients:      NewCollection[client.Client](),
		Vacancies:    NewCollection[job.Vacancy](),
		Applications: NewCollection[job.Application](),
		Workers:      NewCollection[recruited.Worker](),
		Invoices:     NewCollection[billing.Invoice](),
		Budgets:      NewCollection[finance.Budget](),
		Expenses:     NewCollection[finance.Expense](),
		Posts:        NewCollection[content.Post](),
		Pages:        NewCollection[content.Page](),
		TeamMembers:  NewCollection[content.TeamMember](),
		Testimonials: NewCollection[content.Testimonial](),
		Subscribers:  NewCollection[content.Subscriber](),
	}
}

// NewID issues a store-unique id. UUIDv4 rather than timestamp-derived ids,
// which can collide under rapid successive creates.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker. The in-memory store has no
// external dependency to probe; it reports healthy as long as the process
// is alive.
func (s *Store) HealthCheck(context.Context) error { return nil }
