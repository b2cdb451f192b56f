package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/glowtours/backoffice/internal/platform/httpclient"
)

// Requester centralizes the request lifecycle for registry calls: request
// creation, execution via httpclient.Client, body cleanup, status code
// validation, error translation, and JSON decoding. The registry API is
// read-only, so only GET is supported.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches path relative to the client's base URL, expects wantStatus,
// and decodes the response body into out. Non-matching status codes are
// translated to domain errors.
func (r *Requester) Get(ctx context.Context, path string, wantStatus int, out any) error {
	url := r.client.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Do can return both resp and err when retries are exhausted on a
		// retryable status. Translate the response in that case instead of
		// surfacing the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "registry request failed",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected registry status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from GET %s: %w", path, err)
		}
	}

	return nil
}

// HealthCheck reports registry availability via the underlying client's
// circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
