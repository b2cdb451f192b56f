package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/ports"
)

// ClientHandler handles HTTP requests for corporate customers, including
// the registry verification subroute.
type ClientHandler struct {
	svc ports.ClientService
}

// NewClientHandler creates a new ClientHandler with the given service port.
func NewClientHandler(svc ports.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// List handles GET /api/v1/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToClientListResponse(clients))
}

// Get handles GET /api/v1/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, dto.ToClientResponse(c))
}

// Create handles POST /api/v1/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToClientResponse(created))
}

// Update handles PUT /api/v1/clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToClientResponse(updated))
}

// Delete handles DELETE /api/v1/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Verify handles POST /api/v1/clients/{id}/verify, checking the client's
// registry number against the company registry.
func (h *ClientHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.Verify(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToClientResponse(c))
}
