package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/ports"
)

// ContentHandler handles the admin HTTP surface for marketing-site content:
// blog posts, pages, team members, testimonials, and newsletter
// subscribers.
type ContentHandler struct {
	svc ports.ContentService
}

// NewContentHandler creates a new ContentHandler with the given service
// port.
func NewContentHandler(svc ports.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ListPosts handles GET /api/v1/posts.
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPostListResponse(posts))
}

// GetPost handles GET /api/v1/posts/{id}.
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPostResponse(p))
}

// CreatePost handles POST /api/v1/posts.
func (h *ContentHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req dto.PostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreatePost(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToPostResponse(created))
}

// UpdatePost handles PUT /api/v1/posts/{id}.
func (h *ContentHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdatePost(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPostResponse(updated))
}

// DeletePost handles DELETE /api/v1/posts/{id}.
func (h *ContentHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPages handles GET /api/v1/pages.
func (h *ContentHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.ListPages(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPageListResponse(pages))
}

// GetPage handles GET /api/v1/pages/{id}.
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPageResponse(p))
}

// CreatePage handles POST /api/v1/pages.
func (h *ContentHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreatePage(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToPageResponse(created))
}

// UpdatePage handles PUT /api/v1/pages/{id}.
func (h *ContentHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdatePage(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPageResponse(updated))
}

// DeletePage handles DELETE /api/v1/pages/{id}.
func (h *ContentHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeletePage(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveBlock handles POST /api/v1/pages/{id}/blocks/move, swapping a block
// with its neighbor.
func (h *ContentHandler) MoveBlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveBlockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.MoveBlock(r.Context(), id, req.Index, req.Offset())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPageResponse(p))
}

// ListTeam handles GET /api/v1/team.
func (h *ContentHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListTeam(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamListResponse(members))
}

// GetTeamMember handles GET /api/v1/team/{id}.
func (h *ContentHandler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.GetTeamMember(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamMemberResponse(m))
}

// CreateTeamMember handles POST /api/v1/team.
func (h *ContentHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req dto.TeamMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTeamMember(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToTeamMemberResponse(created))
}

// UpdateTeamMember handles PUT /api/v1/team/{id}.
func (h *ContentHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TeamMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTeamMember(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamMemberResponse(updated))
}

// DeleteTeamMember handles DELETE /api/v1/team/{id}.
func (h *ContentHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTeamMember(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTestimonials handles GET /api/v1/testimonials.
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.svc.ListTestimonials(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTestimonialListResponse(testimonials))
}

// CreateTestimonial handles POST /api/v1/testimonials.
func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req dto.TestimonialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTestimonial(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToTestimonialResponse(created))
}

// UpdateTestimonial handles PUT /api/v1/testimonials/{id}. The Approved
// flag survives edits.
func (h *ContentHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TestimonialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTestimonial(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTestimonialResponse(updated))
}

// DeleteTestimonial handles DELETE /api/v1/testimonials/{id}.
func (h *ContentHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTestimonial(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApproveTestimonial handles POST /api/v1/testimonials/{id}/approve.
func (h *ContentHandler) ApproveTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.ApproveTestimonial(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTestimonialResponse(t))
}

// ListSubscribers handles GET /api/v1/subscribers.
func (h *ContentHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.svc.ListSubscribers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSubscriberListResponse(subscribers))
}

// Unsubscribe handles POST /api/v1/subscribers/unsubscribe. The record is
// kept with status flipped.
func (h *ContentHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sub, err := h.svc.Unsubscribe(r.Context(), req.Email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSubscriberResponse(sub))
}
