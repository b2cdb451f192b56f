package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	adapthttp "github.com/glowtours/backoffice/internal/adapters/http"
	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
	"github.com/glowtours/backoffice/internal/app"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/platform/health"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

type stubRegistry struct{}

func (stubRegistry) LookupCompany(context.Context, string) (*ports.CompanyRecord, error) {
	return nil, domain.ErrUnavailable
}

// newTestRouter wires the full route table over real services and a fresh
// in-memory store.
func newTestRouter() http.Handler {
	st := store.New()
	logger := quietLogger()

	jobs := app.NewJobService(st, logger, 0)
	content := app.NewContentService(st, logger, 0)

	h := adapthttp.Handlers{
		Health:     handlers.NewHealthHandler(health.New()),
		Public:     handlers.NewPublicHandler(jobs, content),
		Candidates: handlers.NewCandidateHandler(app.NewCandidateService(st, logger, 0)),
		Agents:     handlers.NewAgentHandler(app.NewAgentService(st, logger)),
		Clients:    handlers.NewClientHandler(app.NewClientService(st, stubRegistry{}, logger)),
		Jobs:       handlers.NewJobHandler(jobs),
		Placements: handlers.NewPlacementHandler(app.NewPlacementService(st, logger, 0, "glow_tours")),
		Billing:    handlers.NewBillingHandler(app.NewBillingService(st, logger)),
		Finance:    handlers.NewFinanceHandler(app.NewFinanceService(st, logger, 0)),
		Content:    handlers.NewContentHandler(content),
		Dashboard:  handlers.NewDashboardHandler(app.NewDashboardService(st, logger)),
	}
	return adapthttp.NewRouter(h)
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/public/vacancies"},
		{http.MethodPost, "/public/applications"},
		{http.MethodGet, "/public/pages/{slug}"},
		{http.MethodPost, "/public/newsletter"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodPost, "/api/v1/candidates"},
		{http.MethodGet, "/api/v1/candidates/{id}/resume"},
		{http.MethodPost, "/api/v1/agents/{id}/approve"},
		{http.MethodPost, "/api/v1/clients/{id}/verify"},
		{http.MethodPost, "/api/v1/applications/{id}/status"},
		{http.MethodGet, "/api/v1/workers/export"},
		{http.MethodPost, "/api/v1/invoices/{id}/status"},
		{http.MethodGet, "/api/v1/invoices/outstanding"},
		{http.MethodPost, "/api/v1/expenses/{id}/approve"},
		{http.MethodGet, "/api/v1/expenses/approved-totals"},
		{http.MethodPost, "/api/v1/pages/{id}/blocks/move"},
		{http.MethodPost, "/api/v1/testimonials/{id}/approve"},
		{http.MethodPost, "/api/v1/subscribers/unsubscribe"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	st := store.New()
	logger := quietLogger()
	jobs := app.NewJobService(st, logger, 0)
	content := app.NewContentService(st, logger, 0)

	h := adapthttp.Handlers{
		Health:     handlers.NewHealthHandler(health.New()),
		Public:     handlers.NewPublicHandler(jobs, content),
		Candidates: handlers.NewCandidateHandler(app.NewCandidateService(st, logger, 0)),
		Agents:     handlers.NewAgentHandler(app.NewAgentService(st, logger)),
		Clients:    handlers.NewClientHandler(app.NewClientService(st, stubRegistry{}, logger)),
		Jobs:       handlers.NewJobHandler(jobs),
		Placements: handlers.NewPlacementHandler(app.NewPlacementService(st, logger, 0, "glow_tours")),
		Billing:    handlers.NewBillingHandler(app.NewBillingService(st, logger)),
		Finance:    handlers.NewFinanceHandler(app.NewFinanceService(st, logger, 0)),
		Content:    handlers.NewContentHandler(content),
		Dashboard:  handlers.NewDashboardHandler(app.NewDashboardService(st, logger)),
	}

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationDashboard(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/candidates", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
