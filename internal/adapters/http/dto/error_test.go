package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "validation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "not found maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "forbidden maps to 403",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
		},
		{
			name:       "conflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "registry outage maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "anything else maps to 500",
			err:        errors.New("store corrupted"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped sentinel keeps its mapping",
			err:        fmt.Errorf("fetching candidate: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/candidates/42", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_ProblemFields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/agents", http.NoBody)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want about:blank", got.Type)
	}
	if got.Instance != "/api/v1/agents" {
		t.Errorf("Instance = %q, want the request URI", got.Instance)
	}
	if got.Detail != domain.ErrNotFound.Error() {
		t.Errorf("Detail = %q, want the error text", got.Detail)
	}
	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for a non-validation error", got.Errors)
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"name":     domain.MsgRequired,
		"email":    domain.MsgRequired,
		"currency": `invalid: "XYZ"`,
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", http.NoBody)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}
	for i, detail := range got.Errors {
		if !strings.HasPrefix(detail.Location, "body.") {
			t.Errorf("Errors[%d].Location = %q, want a body. prefix", i, detail.Location)
		}
		if i > 0 && got.Errors[i-1].Location >= detail.Location {
			t.Errorf("Errors not sorted by location: %q >= %q", got.Errors[i-1].Location, detail.Location)
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", http.NoBody)

	verr := &domain.ValidationError{Fields: map[string]string{"passport_no": domain.MsgRequired}}
	dto.WriteErrorResponse(w, r, verr)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Status != http.StatusBadRequest || resp.Type != "about:blank" {
		t.Errorf("body = %+v, want a 400 problem document", resp)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.passport_no" {
		t.Errorf("Errors = %v, want one failure at body.passport_no", resp.Errors)
	}
	if resp.Errors[0].Message != domain.MsgRequired {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, domain.MsgRequired)
	}
}
