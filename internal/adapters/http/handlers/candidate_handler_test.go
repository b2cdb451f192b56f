package handlers_test

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
	"github.com/glowtours/backoffice/internal/app"
)

func newCandidateHandler() *handlers.CandidateHandler {
	svc := app.NewCandidateService(newTestStore(), testLogger(), 0)
	return handlers.NewCandidateHandler(svc)
}

func validCandidateRequest() dto.CandidateRequest {
	return dto.CandidateRequest{
		Name:        "Nuzuhath Ahmed",
		Email:       "nuzuhath@example.com",
		Nationality: "Maldivian",
		PassportNo:  "P7654321",
		Position:    "Guest Relations Officer",
	}
}

func createCandidate(t *testing.T, h *handlers.CandidateHandler, req dto.CandidateRequest) dto.CandidateResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", jsonBody(t, req))
	r.Header.Set("Content-Type", "application/json")
	h.Create(rec, r)
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[dto.CandidateResponse](t, rec)
}

func TestCandidateCreate_Success(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()

	resp := createCandidate(t, h, validCandidateRequest())
	if resp.ID == "" {
		t.Error("response has no id")
	}
	if resp.Status != "available" {
		t.Errorf("Status = %q, want available", resp.Status)
	}
}

func TestCandidateCreate_InvalidJSON(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", bytes.NewBufferString("{bad"))
	r.Header.Set("Content-Type", "application/json")
	h.Create(rec, r)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCandidateCreate_ValidationProblemDetails(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", jsonBody(t, dto.CandidateRequest{Name: "Only Name"}))
	r.Header.Set("Content-Type", "application/json")
	h.Create(rec, r)

	requireStatus(t, rec, http.StatusBadRequest)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Status != http.StatusBadRequest {
		t.Errorf("problem status = %d, want 400", resp.Status)
	}
	var locations []string
	for _, d := range resp.Errors {
		locations = append(locations, d.Location)
	}
	for _, want := range []string{"body.email", "body.position"} {
		found := false
		for _, loc := range locations {
			if loc == want {
				found = true
			}
		}
		if !found {
			t.Errorf("errors missing %q: %v", want, locations)
		}
	}
}

func TestCandidateGet_NotFound(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/missing", nil)
	h.Get(rec, withChiParams(r, map[string]string{"id": "missing"}))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestCandidateDelete_NoContent(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()
	created := createCandidate(t, h, validCandidateRequest())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/candidates/"+created.ID, nil)
	h.Delete(rec, withChiParams(r, map[string]string{"id": created.ID}))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestCandidateResume_Download(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()

	req := validCandidateRequest()
	req.Resume = "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("resume body"))
	created := createCandidate(t, h, req)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+created.ID+"/resume", nil)
	h.Resume(rec, withChiParams(r, map[string]string{"id": created.ID}))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	if rec.Body.String() != "resume body" {
		t.Errorf("body = %q, want decoded resume", rec.Body.String())
	}
}

func TestCandidateResume_NoneStored(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()
	created := createCandidate(t, h, validCandidateRequest())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/"+created.ID+"/resume", nil)
	h.Resume(rec, withChiParams(r, map[string]string{"id": created.ID}))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestCandidateList_Filtered(t *testing.T) {
	t.Parallel()
	h := newCandidateHandler()
	createCandidate(t, h, validCandidateRequest())

	second := validCandidateRequest()
	second.Name = "Joseph Mathew"
	second.Email = "joseph@example.com"
	second.Position = "Sous Chef"
	createCandidate(t, h, second)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates?q=chef", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CandidateListResponse](t, rec)
	if resp.Count != 1 {
		t.Fatalf("Count = %d, want 1", resp.Count)
	}
	if resp.Candidates[0].Name != "Joseph Mathew" {
		t.Errorf("Name = %q, want Joseph Mathew", resp.Candidates[0].Name)
	}
}
