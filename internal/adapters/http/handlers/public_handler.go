package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/ports"
)

// PublicHandler handles the unauthenticated marketing routes: open
// vacancies, published posts and pages, approved testimonials, the team
// roster, job applications, and newsletter signup.
type PublicHandler struct {
	jobs    ports.JobService
	content ports.ContentService
}

// NewPublicHandler creates a new PublicHandler with the given service
// ports.
func NewPublicHandler(jobs ports.JobService, content ports.ContentService) *PublicHandler {
	return &PublicHandler{jobs: jobs, content: content}
}

// Vacancies handles GET /public/vacancies, listing open vacancies only.
func (h *PublicHandler) Vacancies(w http.ResponseWriter, r *http.Request) {
	all, err := h.jobs.ListVacancies(r.Context(), "")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToVacancyListResponse(all)
	open := resp.Vacancies[:0]
	for _, v := range resp.Vacancies {
		if v.Status == "open" {
			open = append(open, v)
		}
	}
	writeJSON(w, http.StatusOK, dto.VacancyListResponse{Vacancies: open, Count: len(open)})
}

// Apply handles POST /public/applications, the public application form.
func (h *PublicHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.jobs.CreateApplication(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToApplicationResponse(created))
}

// Posts handles GET /public/posts, listing published posts only.
func (h *PublicHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.PublishedPosts(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPostListResponse(posts))
}

// PageBySlug handles GET /public/pages/{slug}, serving published pages.
func (h *PublicHandler) PageBySlug(w http.ResponseWriter, r *http.Request) {
	slug, err := pathParam(r, "slug")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.content.PageBySlug(r.Context(), slug)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPageResponse(p))
}

// Team handles GET /public/team.
func (h *PublicHandler) Team(w http.ResponseWriter, r *http.Request) {
	members, err := h.content.ListTeam(r.Context(), "")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamListResponse(members))
}

// Testimonials handles GET /public/testimonials, listing approved
// testimonials only.
func (h *PublicHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.content.ApprovedTestimonials(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTestimonialListResponse(testimonials))
}

// Subscribe handles POST /public/newsletter, the newsletter signup form.
// Re-subscribing a previously unsubscribed address reactivates it.
func (h *PublicHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sub, err := h.content.Subscribe(r.Context(), req.Email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToSubscriberResponse(sub))
}
