package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/glowtours/backoffice/internal/adapters/clients/acl/registry"
	"github.com/glowtours/backoffice/internal/platform/httpclient"
	"github.com/glowtours/backoffice/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RegistryClient = (*RegistryClient)(nil)
	_ ports.HealthChecker  = (*RegistryClient)(nil)
)

// RegistryClient is the outbound adapter for the national company registry.
// It implements [ports.RegistryClient] for the client verification flow.
//
// HTTP errors are mapped to domain errors (ErrNotFound, ErrUnavailable,
// etc.) by [TranslateHTTPError]. The underlying [httpclient.Client] provides
// circuit breaking, retry with exponential backoff, rate limiting, and
// OpenTelemetry tracing for every outbound call.
type RegistryClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewRegistryClient creates a RegistryClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// registry API root.
func NewRegistryClient(client *httpclient.Client, logger *slog.Logger) *RegistryClient {
	return &RegistryClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// LookupCompany fetches the company record for the given registration number
// from GET /api/v1/companies/{registryNo}. Returns [domain.ErrNotFound] if
// the registry has no such company.
func (c *RegistryClient) LookupCompany(ctx context.Context, registryNo string) (*ports.CompanyRecord, error) {
	path := "/api/v1/companies/" + url.PathEscape(registryNo)

	var dto registry.CompanyDTO
	if err := c.req.Get(ctx, path, http.StatusOK, &dto); err != nil {
		return nil, err
	}

	record := registry.ToCompanyRecord(&dto)
	return &record, nil
}

// Name identifies this component in the health registry. The value matches
// the service name the underlying client uses for tracing and metrics.
func (c *RegistryClient) Name() string {
	return "registry-api"
}

// HealthCheck reports the registry's availability based on the circuit
// breaker state. No network call is made: the breaker already tracks the
// outcome of real lookups, and probing the registry from the readiness
// endpoint would couple our readiness to theirs.
func (c *RegistryClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
