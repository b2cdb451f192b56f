package handlers

import (
	"context"
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain/agent"
	"github.com/glowtours/backoffice/internal/ports"
)

// AgentHandler handles HTTP requests for partner agents, including the
// approve/suspend/reactivate workflow subroutes.
type AgentHandler struct {
	svc ports.AgentService
}

// NewAgentHandler creates a new AgentHandler with the given service port.
func NewAgentHandler(svc ports.AgentService) *AgentHandler {
	return &AgentHandler{svc: svc}
}

// List handles GET /api/v1/agents.
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAgentListResponse(agents))
}

// Get handles GET /api/v1/agents/{id}.
func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAgentResponse(a))
}

// Create handles POST /api/v1/agents. New agents start pending.
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AgentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToAgentResponse(created))
}

// Update handles PUT /api/v1/agents/{id}. Status is untouched; only the
// workflow subroutes move it.
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AgentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAgentResponse(updated))
}

// Delete handles DELETE /api/v1/agents/{id}.
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Approve handles POST /api/v1/agents/{id}/approve.
func (h *AgentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Approve)
}

// Suspend handles POST /api/v1/agents/{id}/suspend.
func (h *AgentHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Suspend)
}

// Reactivate handles POST /api/v1/agents/{id}/reactivate.
func (h *AgentHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Reactivate)
}

func (h *AgentHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*agent.Agent, error)) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAgentResponse(a))
}
