package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/glowtours/backoffice/internal/domain/attachment"
	"github.com/glowtours/backoffice/internal/domain/recruited"
	"github.com/glowtours/backoffice/internal/export"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that PlacementService implements ports.PlacementService.
var _ ports.PlacementService = (*PlacementService)(nil)

// PlacementService implements ports.PlacementService: CRUD over placed
// workers plus the CSV export download.
type PlacementService struct {
	store     *store.Store
	logger    *slog.Logger
	maxAttach int
	csvPrefix string
	now       func() time.Time
}

// NewPlacementService creates a PlacementService. csvPrefix names the
// agency in export filenames; maxAttachBytes caps decoded attachment sizes.
func NewPlacementService(st *store.Store, logger *slog.Logger, maxAttachBytes int, csvPrefix string) *PlacementService {
	return &PlacementService{
		store:     st,
		logger:    logger,
		maxAttach: maxAttachBytes,
		csvPrefix: csvPrefix,
		now:       time.Now,
	}
}

// List returns workers matching the search term, in insertion order.
func (s *PlacementService) List(_ context.Context, search string) ([]recruited.Worker, error) {
	all := s.store.Workers.List()
	return store.Filter(all, func(w recruited.Worker) bool {
		return store.MatchFold(search, w.Name, w.PassportNo, w.Nationality, w.Employer, w.JobTitle)
	}), nil
}

// Get returns a single worker record by id.
func (s *PlacementService) Get(_ context.Context, id string) (*recruited.Worker, error) {
	w, err := s.store.Workers.Get(id)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create validates and stores a new worker record.
func (s *PlacementService) Create(ctx context.Context, w *recruited.Worker) (*recruited.Worker, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateAttachments(w); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	w.ID = s.store.NewID()
	w.CreatedAt = now
	w.UpdatedAt = now

	if err := s.store.Workers.Add(*w); err != nil {
		s.logger.ErrorContext(ctx, "failed to create worker record",
			slog.String("operation", "CreateWorker"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "worker record created",
		slog.String("worker_id", w.ID),
		slog.String("employer", w.Employer),
	)
	return w, nil
}

// Update replaces all fields of an existing worker record.
func (s *PlacementService) Update(ctx context.Context, id string, w *recruited.Worker) (*recruited.Worker, error) {
	existing, err := s.store.Workers.Get(id)
	if err != nil {
		return nil, err
	}

	w.ID = existing.ID
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = s.now().UTC()

	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateAttachments(w); err != nil {
		return nil, err
	}
	if err := s.store.Workers.Update(*w); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "worker record updated", slog.String("worker_id", id))
	return w, nil
}

// Delete removes a worker record by id.
func (s *PlacementService) Delete(ctx context.Context, id string) error {
	if err := s.store.Workers.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "worker record deleted", slog.String("worker_id", id))
	return nil
}

// ExportCSV renders every worker record as CSV.
func (s *PlacementService) ExportCSV(ctx context.Context) (string, []byte, error) {
	workers := s.store.Workers.List()
	data := export.WorkersCSV(workers)
	filename := export.Filename(s.csvPrefix, s.now().UTC())

	s.logger.InfoContext(ctx, "worker export generated",
		slog.String("filename", filename),
		slog.Int("rows", len(workers)),
	)
	return filename, data, nil
}

func (s *PlacementService) validateAttachments(w *recruited.Worker) error {
	if err := attachment.Validate(w.Photo, attachment.KindImage, s.maxAttach); err != nil {
		return err
	}
	return attachment.Validate(w.Permit, attachment.KindDocument, s.maxAttach)
}
