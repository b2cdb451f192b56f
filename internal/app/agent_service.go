package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/agent"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that AgentService implements ports.AgentService.
var _ ports.AgentService = (*AgentService)(nil)

// AgentService implements ports.AgentService. Status changes go through the
// approve/suspend/reactivate workflow, which is the only writer of the
// status field; Update preserves the stored status.
type AgentService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAgentService creates an AgentService.
func NewAgentService(st *store.Store, logger *slog.Logger) *AgentService {
	return &AgentService{store: st, logger: logger}
}

// List returns agents matching the search term, in insertion order.
func (s *AgentService) List(_ context.Context, search string) ([]agent.Agent, error) {
	all := s.store.Agents.List()
	return store.Filter(all, func(a agent.Agent) bool {
		return store.MatchFold(search, a.Name, a.Email, a.Company, a.Country)
	}), nil
}

// Get returns a single agent by id.
func (s *AgentService) Get(_ context.Context, id string) (*agent.Agent, error) {
	a, err := s.store.Agents.Get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create validates and stores a new agent. New agents start pending and
// gain portal access only once approved.
func (s *AgentService) Create(ctx context.Context, a *agent.Agent) (*agent.Agent, error) {
	a.Status = agent.StatusPending
	if err := a.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.ID = s.store.NewID()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.store.Agents.Add(*a); err != nil {
		s.logger.ErrorContext(ctx, "failed to create agent",
			slog.String("operation", "CreateAgent"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "agent created", slog.String("agent_id", a.ID))
	return a, nil
}

// Update replaces an agent's profile fields. The stored status is kept:
// portal access changes only through the workflow operations.
func (s *AgentService) Update(ctx context.Context, id string, a *agent.Agent) (*agent.Agent, error) {
	existing, err := s.store.Agents.Get(id)
	if err != nil {
		return nil, err
	}

	a.ID = existing.ID
	a.Status = existing.Status
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Agents.Update(*a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "agent updated", slog.String("agent_id", id))
	return a, nil
}

// Delete removes an agent. Candidates referencing the agent keep their
// AgentID; the reference is weak and intentionally not cascaded, so the
// dangling count is surfaced in the log for the operator.
func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.store.Agents.Remove(id); err != nil {
		return err
	}

	var dangling int
	for _, c := range s.store.Candidates.List() {
		if c.AgentID == id {
			dangling++
		}
	}
	if dangling > 0 {
		s.logger.WarnContext(ctx, "deleted agent still referenced by candidates",
			slog.String("agent_id", id),
			slog.Int("candidates", dangling),
		)
	}

	s.logger.InfoContext(ctx, "agent deleted", slog.String("agent_id", id))
	return nil
}

// Approve activates a pending agent.
func (s *AgentService) Approve(ctx context.Context, id string) (*agent.Agent, error) {
	return s.transition(ctx, id, agent.StatusActive, "ApproveAgent")
}

// Suspend suspends an active agent.
func (s *AgentService) Suspend(ctx context.Context, id string) (*agent.Agent, error) {
	return s.transition(ctx, id, agent.StatusSuspended, "SuspendAgent")
}

// Reactivate re-activates a suspended agent.
func (s *AgentService) Reactivate(ctx context.Context, id string) (*agent.Agent, error) {
	return s.transition(ctx, id, agent.StatusActive, "ReactivateAgent")
}

// transition applies one workflow step, enforcing the agent transition table.
func (s *AgentService) transition(ctx context.Context, id string, next agent.Status, operation string) (*agent.Agent, error) {
	a, err := s.store.Agents.Get(id)
	if err != nil {
		return nil, err
	}

	if !a.Status.CanTransition(next) {
		return nil, fmt.Errorf("agent %s is %s, cannot become %s: %w",
			id, a.Status, next, domain.ErrConflict)
	}

	a.Status = next
	a.UpdatedAt = time.Now().UTC()

	if err := s.store.Agents.Update(a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "agent status changed",
		slog.String("operation", operation),
		slog.String("agent_id", id),
		slog.String("status", next.String()),
	)
	return &a, nil
}
