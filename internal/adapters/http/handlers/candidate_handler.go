package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/ports"
)

// CandidateHandler handles HTTP requests for recruitment-pipeline
// candidates.
type CandidateHandler struct {
	svc ports.CandidateService
}

// NewCandidateHandler creates a new CandidateHandler with the given service
// port.
func NewCandidateHandler(svc ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// List handles GET /api/v1/candidates. The optional "q" query parameter
// narrows results by case-insensitive substring match.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCandidateListResponse(candidates))
}

// Get handles GET /api/v1/candidates/{id}.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCandidateResponse(c))
}

// Create handles POST /api/v1/candidates.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CandidateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToCandidateResponse(created))
}

// Update handles PUT /api/v1/candidates/{id}.
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CandidateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCandidateResponse(updated))
}

// Delete handles DELETE /api/v1/candidates/{id}.
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resume handles GET /api/v1/candidates/{id}/resume, serving the stored
// resume as a file download.
func (h *CandidateHandler) Resume(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	serveAttachment(w, r, c.Resume, "resume-"+c.ID)
}
