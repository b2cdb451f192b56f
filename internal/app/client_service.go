package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/client"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that ClientService implements ports.ClientService.
var _ ports.ClientService = (*ClientService)(nil)

// ClientService implements ports.ClientService. The Verified flag is owned
// by the registry verification flow; Create and Update never set it.
type ClientService struct {
	store    *store.Store
	registry ports.RegistryClient
	logger   *slog.Logger
}

// NewClientService creates a ClientService backed by the given company
// registry client.
func NewClientService(st *store.Store, registry ports.RegistryClient, logger *slog.Logger) *ClientService {
	return &ClientService{store: st, registry: registry, logger: logger}
}

// List returns clients matching the search term, in insertion order.
func (s *ClientService) List(_ context.Context, search string) ([]client.Client, error) {
	all := s.store.Clients.List()
	return store.Filter(all, func(c client.Client) bool {
		return store.MatchFold(search, c.Company, c.ContactName, c.ContactEmail, c.RegistryNo)
	}), nil
}

// Get returns a single client by id.
func (s *ClientService) Get(_ context.Context, id string) (*client.Client, error) {
	c, err := s.store.Clients.Get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create validates and stores a new client. New clients start pending and
// unverified.
func (s *ClientService) Create(ctx context.Context, c *client.Client) (*client.Client, error) {
	c.Status = client.StatusPending
	c.Verified = false
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ID = s.store.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.store.Clients.Add(*c); err != nil {
		s.logger.ErrorContext(ctx, "failed to create client",
			slog.String("operation", "CreateClient"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "client created", slog.String("client_id", c.ID))
	return c, nil
}

// Update replaces a client's profile fields, preserving the stored Verified
// flag. Changing the registry number clears the verification, since it no
// longer refers to the vetted company.
func (s *ClientService) Update(ctx context.Context, id string, c *client.Client) (*client.Client, error) {
	existing, err := s.store.Clients.Get(id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.Verified = existing.Verified && c.RegistryNo == existing.RegistryNo
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Clients.Update(*c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "client updated", slog.String("client_id", id))
	return c, nil
}

// Delete removes a client by id.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.store.Clients.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "client deleted", slog.String("client_id", id))
	return nil
}

// Verify looks the client's registry number up in the company registry and,
// when the registry reports an active company, marks the client verified
// and active.
func (s *ClientService) Verify(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.store.Clients.Get(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.RegistryNo) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"registry_no": "must be set before verification",
		}}
	}

	record, err := s.registry.LookupCompany(ctx, c.RegistryNo)
	if err != nil {
		s.logger.ErrorContext(ctx, "registry lookup failed",
			slog.String("operation", "VerifyClient"),
			slog.String("client_id", id),
			slog.String("registry_no", c.RegistryNo),
			slog.Any("error", err),
		)
		return nil, err
	}

	if !record.Active {
		return nil, fmt.Errorf("registry lists company %s as inactive: %w",
			c.RegistryNo, domain.ErrConflict)
	}

	c.Verified = true
	c.Status = client.StatusActive
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.Clients.Update(c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "client verified",
		slog.String("client_id", id),
		slog.String("registry_no", c.RegistryNo),
	)
	return &c, nil
}
