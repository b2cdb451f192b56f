package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
	"github.com/glowtours/backoffice/internal/app"
)

func newPlacementHandler() *handlers.PlacementHandler {
	svc := app.NewPlacementService(newTestStore(), testLogger(), 0, "glow_tours")
	return handlers.NewPlacementHandler(svc)
}

func createWorker(t *testing.T, h *handlers.PlacementHandler, name, passport string) dto.WorkerResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/workers", jsonBody(t, dto.WorkerRequest{
		Name:        name,
		PassportNo:  passport,
		Nationality: "Bangladeshi",
		Employer:    "Reef Resort Pvt Ltd",
		JobTitle:    "Chef",
		ArrivalDate: "2026-03-15",
	}))
	r.Header.Set("Content-Type", "application/json")
	h.Create(rec, r)
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[dto.WorkerResponse](t, rec)
}

func TestWorkerCreate_BadArrivalDate(t *testing.T) {
	t.Parallel()
	h := newPlacementHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/workers", jsonBody(t, dto.WorkerRequest{
		Name:        "Ahmed Rasheed",
		PassportNo:  "P1234567",
		Employer:    "Reef Resort Pvt Ltd",
		JobTitle:    "Chef",
		ArrivalDate: "15/03/2026",
	}))
	r.Header.Set("Content-Type", "application/json")
	h.Create(rec, r)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestWorkerExport_CSVDownload(t *testing.T) {
	t.Parallel()
	h := newPlacementHandler()
	createWorker(t, h, "Ahmed Rasheed", "P1234567")
	createWorker(t, h, "Kamal Hossain", "P2345678")

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/v1/workers/export", nil))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "glow_tours_recruited_candidates_") || !strings.Contains(cd, ".csv") {
		t.Errorf("Content-Disposition = %q, want dated csv filename", cd)
	}

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	if len(lines) != 3 { // header plus two workers
		t.Fatalf("got %d lines, want 3: %q", len(lines), lines)
	}
	if !strings.Contains(lines[1], `"Ahmed Rasheed"`) {
		t.Errorf("first data row = %q, want quoted name", lines[1])
	}
}

func TestWorkerExport_EmptyStillServesHeader(t *testing.T) {
	t.Parallel()
	h := newPlacementHandler()

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/v1/workers/export", nil))

	requireStatus(t, rec, http.StatusOK)
	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want header only", len(lines))
	}
}

func TestWorkerPhoto_NoneStored(t *testing.T) {
	t.Parallel()
	h := newPlacementHandler()
	created := createWorker(t, h, "Ahmed Rasheed", "P1234567")

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/workers/"+created.ID+"/photo", nil)
	h.Photo(rec, withChiParams(r, map[string]string{"id": created.ID}))

	requireStatus(t, rec, http.StatusNotFound)
}
