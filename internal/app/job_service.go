package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/attachment"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that JobService implements ports.JobService.
var _ ports.JobService = (*JobService)(nil)

// JobService implements ports.JobService over the vacancy and application
// collections. Applications survive the deletion of their vacancy.
type JobService struct {
	store     *store.Store
	logger    *slog.Logger
	maxAttach int
}

// NewJobService creates a JobService. maxAttachBytes caps the decoded size
// of resume attachments; zero disables the cap.
func NewJobService(st *store.Store, logger *slog.Logger, maxAttachBytes int) *JobService {
	return &JobService{store: st, logger: logger, maxAttach: maxAttachBytes}
}

// ListVacancies returns vacancies matching the search term, in insertion order.
func (s *JobService) ListVacancies(_ context.Context, search string) ([]job.Vacancy, error) {
	all := s.store.Vacancies.List()
	return store.Filter(all, func(v job.Vacancy) bool {
		return store.MatchFold(search, v.Title, v.Department, v.Location, v.Employment)
	}), nil
}

// GetVacancy returns a single vacancy by id.
func (s *JobService) GetVacancy(_ context.Context, id string) (*job.Vacancy, error) {
	v, err := s.store.Vacancies.Get(id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVacancy validates and stores a new vacancy. New vacancies open
// immediately unless created closed.
func (s *JobService) CreateVacancy(ctx context.Context, v *job.Vacancy) (*job.Vacancy, error) {
	if v.Status == "" {
		v.Status = job.VacancyOpen
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	v.ID = s.store.NewID()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.store.Vacancies.Add(*v); err != nil {
		s.logger.ErrorContext(ctx, "failed to create vacancy",
			slog.String("operation", "CreateVacancy"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "vacancy created",
		slog.String("vacancy_id", v.ID),
		slog.String("title", v.Title),
	)
	return v, nil
}

// UpdateVacancy replaces all fields of an existing vacancy.
func (s *JobService) UpdateVacancy(ctx context.Context, id string, v *job.Vacancy) (*job.Vacancy, error) {
	existing, err := s.store.Vacancies.Get(id)
	if err != nil {
		return nil, err
	}

	v.ID = existing.ID
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().UTC()

	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Vacancies.Update(*v); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "vacancy updated", slog.String("vacancy_id", id))
	return v, nil
}

// DeleteVacancy removes a vacancy. Applications referencing it are kept:
// the review pipeline outlives the posting.
func (s *JobService) DeleteVacancy(ctx context.Context, id string) error {
	if err := s.store.Vacancies.Remove(id); err != nil {
		return err
	}

	var kept int
	for _, a := range s.store.Applications.List() {
		if a.VacancyID == id {
			kept++
		}
	}

	s.logger.InfoContext(ctx, "vacancy deleted",
		slog.String("vacancy_id", id),
		slog.Int("applications_kept", kept),
	)
	return nil
}

// ListApplications returns applications sorted by AppliedAt descending
// (newest first), optionally narrowed to one vacancy and/or a search term.
func (s *JobService) ListApplications(_ context.Context, vacancyID, search string) ([]job.Application, error) {
	all := s.store.Applications.List()
	matched := store.Filter(all, func(a job.Application) bool {
		if vacancyID != "" && a.VacancyID != vacancyID {
			return false
		}
		return store.MatchFold(search, a.Name, a.Email, a.Phone)
	})

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AppliedAt.After(matched[j].AppliedAt)
	})
	return matched, nil
}

// GetApplication returns a single application by id.
func (s *JobService) GetApplication(_ context.Context, id string) (*job.Application, error) {
	a, err := s.store.Applications.Get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication validates and stores a new application with status "new".
// The vacancy must exist and be open at submission time.
func (s *JobService) CreateApplication(ctx context.Context, a *job.Application) (*job.Application, error) {
	a.Status = job.ApplicationNew
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(a.Resume, attachment.KindDocument, s.maxAttach); err != nil {
		return nil, err
	}

	v, err := s.store.Vacancies.Get(a.VacancyID)
	if err != nil {
		return nil, fmt.Errorf("vacancy %s: %w", a.VacancyID, domain.ErrNotFound)
	}
	if v.Status != job.VacancyOpen {
		return nil, fmt.Errorf("vacancy %s is closed: %w", a.VacancyID, domain.ErrConflict)
	}

	now := time.Now().UTC()
	a.ID = s.store.NewID()
	if a.AppliedAt.IsZero() {
		a.AppliedAt = now
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.store.Applications.Add(*a); err != nil {
		s.logger.ErrorContext(ctx, "failed to create application",
			slog.String("operation", "CreateApplication"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "application received",
		slog.String("application_id", a.ID),
		slog.String("vacancy_id", a.VacancyID),
	)
	return a, nil
}

// DeleteApplication removes an application by id.
func (s *JobService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.store.Applications.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "application deleted", slog.String("application_id", id))
	return nil
}

// SetApplicationStatus applies one forward-only review transition, rejecting
// anything the transition table does not allow.
func (s *JobService) SetApplicationStatus(ctx context.Context, id string, status job.ApplicationStatus) (*job.Application, error) {
	if !status.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", status),
		}}
	}

	a, err := s.store.Applications.Get(id)
	if err != nil {
		return nil, err
	}

	if !a.Status.CanTransition(status) {
		return nil, fmt.Errorf("application %s is %s, cannot become %s: %w",
			id, a.Status, status, domain.ErrConflict)
	}

	a.Status = status
	a.UpdatedAt = time.Now().UTC()

	if err := s.store.Applications.Update(a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "application status changed",
		slog.String("operation", "SetApplicationStatus"),
		slog.String("application_id", id),
		slog.String("status", status.String()),
	)
	return &a, nil
}
