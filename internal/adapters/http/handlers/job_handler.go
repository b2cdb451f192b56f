package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/ports"
)

// JobHandler handles HTTP requests for vacancies and their applications.
type JobHandler struct {
	svc ports.JobService
}

// NewJobHandler creates a new JobHandler with the given service port.
func NewJobHandler(svc ports.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// ListVacancies handles GET /api/v1/vacancies.
func (h *JobHandler) ListVacancies(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.svc.ListVacancies(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToVacancyListResponse(vacancies))
}

// GetVacancy handles GET /api/v1/vacancies/{id}.
func (h *JobHandler) GetVacancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	v, err := h.svc.GetVacancy(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToVacancyResponse(v))
}

// CreateVacancy handles POST /api/v1/vacancies.
func (h *JobHandler) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	var req dto.VacancyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateVacancy(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToVacancyResponse(created))
}

// UpdateVacancy handles PUT /api/v1/vacancies/{id}.
func (h *JobHandler) UpdateVacancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.VacancyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateVacancy(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToVacancyResponse(updated))
}

// DeleteVacancy handles DELETE /api/v1/vacancies/{id}. Applications
// referencing the vacancy survive.
func (h *JobHandler) DeleteVacancy(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteVacancy(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListApplications handles GET /api/v1/applications, newest first. The
// optional "vacancy_id" query parameter narrows to one vacancy.
func (h *JobHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	applications, err := h.svc.ListApplications(r.Context(), q.Get("vacancy_id"), q.Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToApplicationListResponse(applications))
}

// GetApplication handles GET /api/v1/applications/{id}.
func (h *JobHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToApplicationResponse(a))
}

// CreateApplication handles POST /api/v1/applications.
func (h *JobHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateApplication(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToApplicationResponse(created))
}

// DeleteApplication handles DELETE /api/v1/applications/{id}.
func (h *JobHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteApplication(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetApplicationStatus handles POST /api/v1/applications/{id}/status,
// applying one forward-only review transition.
func (h *JobHandler) SetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a, err := h.svc.SetApplicationStatus(r.Context(), id, job.ApplicationStatus(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToApplicationResponse(a))
}

// ApplicationResume handles GET /api/v1/applications/{id}/resume, serving
// the stored resume as a file download.
func (h *JobHandler) ApplicationResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	serveAttachment(w, r, a.Resume, "resume-"+a.ID)
}
