package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/middleware"
	"github.com/glowtours/backoffice/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/candidates", http.NoBody))

	output := buf.String()
	for _, want := range []string{"request started", "request completed", "POST", "/api/v1/candidates"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestLogging_CarriesRequestAndCorrelationIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vacancies", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "req-log-test") {
		t.Error("log output missing request_id")
	}
	if !strings.Contains(output, "corr-log-test") {
		t.Error("log output missing correlation_id")
	}
}

func TestLogging_EnrichedLoggerOnContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logging(logger),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("handler log")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "handler log") {
		t.Error("handler log not captured, enriched logger may not be stored in context")
	}
	if !strings.Contains(output, "ctx-logger-test") {
		t.Error("handler log missing request_id from enriched logger")
	}
}

func TestLogging_CompletionFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/missing", http.NoBody))

	output := buf.String()
	if !strings.Contains(output, "status=404") {
		t.Errorf("log output missing status=404, got: %s", output)
	}
	if !strings.Contains(output, "duration") {
		t.Error("log output missing duration")
	}
}
