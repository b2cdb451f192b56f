// Package app provides application services that implement the back-office
// use cases over the in-memory store. Services own validation, status
// transitions, structured logging, and multi-collection coordination; the
// store itself only guards id uniqueness and insertion order.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/glowtours/backoffice/internal/domain/attachment"
	"github.com/glowtours/backoffice/internal/domain/candidate"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that CandidateService implements ports.CandidateService.
var _ ports.CandidateService = (*CandidateService)(nil)

// CandidateService implements ports.CandidateService over the store.
type CandidateService struct {
	store     *store.Store
	logger    *slog.Logger
	maxAttach int
}

// NewCandidateService creates a CandidateService. maxAttachBytes caps the
// decoded size of resume attachments; zero disables the cap.
func NewCandidateService(st *store.Store, logger *slog.Logger, maxAttachBytes int) *CandidateService {
	return &CandidateService{store: st, logger: logger, maxAttach: maxAttachBytes}
}

// List returns candidates matching the search term, in insertion order.
func (s *CandidateService) List(_ context.Context, search string) ([]candidate.Candidate, error) {
	all := s.store.Candidates.List()
	return store.Filter(all, func(c candidate.Candidate) bool {
		return store.MatchFold(search, c.Name, c.Email, c.Position, c.Nationality)
	}), nil
}

// Get returns a single candidate by id.
func (s *CandidateService) Get(_ context.Context, id string) (*candidate.Candidate, error) {
	c, err := s.store.Candidates.Get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create validates and stores a new candidate.
func (s *CandidateService) Create(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	if c.Status == "" {
		c.Status = candidate.StatusAvailable
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(c.Resume, attachment.KindDocument, s.maxAttach); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ID = s.store.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.store.Candidates.Add(*c); err != nil {
		s.logger.ErrorContext(ctx, "failed to create candidate",
			slog.String("operation", "CreateCandidate"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "candidate created",
		slog.String("candidate_id", c.ID),
		slog.String("status", c.Status.String()),
	)
	return c, nil
}

// Update replaces all fields of an existing candidate. The id, creation
// timestamp, and nothing else survive from the stored record.
func (s *CandidateService) Update(ctx context.Context, id string, c *candidate.Candidate) (*candidate.Candidate, error) {
	existing, err := s.store.Candidates.Get(id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(c.Resume, attachment.KindDocument, s.maxAttach); err != nil {
		return nil, err
	}

	if err := s.store.Candidates.Update(*c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "candidate updated",
		slog.String("candidate_id", id),
		slog.String("status", c.Status.String()),
	)
	return c, nil
}

// Delete removes a candidate by id.
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	if err := s.store.Candidates.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "candidate deleted", slog.String("candidate_id", id))
	return nil
}
