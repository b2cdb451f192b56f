// Package handlers implements the inbound HTTP handlers for the back-office
// API and the public marketing routes.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/attachment"
)

// pathParam extracts a non-empty string path parameter from the chi URL
// params.
func pathParam(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{param: domain.MsgRequired},
		}
	}
	return raw, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body.
// Attachments travel inline as data URLs, so bodies can be large.
const maxJSONBodyBytes = 16 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// serveAttachment decodes a stored data URL and writes it as a file
// download. Responds 404 when the entity has no attachment in that field.
func serveAttachment(w http.ResponseWriter, r *http.Request, dataURL, filename string) {
	if dataURL == "" {
		dto.WriteErrorResponse(w, r, fmt.Errorf("no attachment: %w", domain.ErrNotFound))
		return
	}

	att, err := attachment.Parse(dataURL)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", att.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(att.Data); err != nil {
		slog.ErrorContext(r.Context(), "failed to write attachment", slog.Any("error", err))
	}
}
