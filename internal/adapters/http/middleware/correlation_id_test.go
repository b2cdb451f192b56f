package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/middleware"
)

func TestCorrelationID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-abc")
	handler.ServeHTTP(rec, req)

	if gotID != "corr-abc" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, "corr-abc")
	}
	if respID := rec.Header().Get("X-Correlation-ID"); respID != "corr-abc" {
		t.Errorf("response X-Correlation-ID = %q, want %q", respID, "corr-abc")
	}
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/invoices", http.NoBody))

	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty")
	}
	if gotID != reqID {
		t.Errorf("CorrelationIDFromContext = %q, want request ID %q", gotID, reqID)
	}
}

func TestCorrelationIDFromContext_Missing(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}

func TestWithCorrelationID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithCorrelationID(context.Background(), "corr-42")
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-42" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-42")
	}
}
