package dto

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/content"
)

// PostRequest is the JSON body for creating or replacing a blog post.
type PostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CoverImg  string `json:"cover_img,omitempty"`
	Published bool   `json:"published"`
}

// ToDomain converts the request to a domain Post.
func (r *PostRequest) ToDomain() *content.Post {
	return &content.Post{
		Title:     r.Title,
		Slug:      r.Slug,
		Author:    r.Author,
		Body:      r.Body,
		CoverImg:  r.CoverImg,
		Published: r.Published,
	}
}

// Validate checks the request against the post business rules.
func (r *PostRequest) Validate() error {
	return r.ToDomain().Validate()
}

// PostResponse represents a blog post in HTTP responses.
type PostResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CoverImg  string `json:"cover_img,omitempty"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToPostResponse converts a domain Post to an HTTP response DTO.
func ToPostResponse(p *content.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Author:    p.Author,
		Body:      p.Body,
		CoverImg:  p.CoverImg,
		Published: p.Published,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// PostListResponse represents a list of blog posts in HTTP responses.
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

// ToPostListResponse converts a slice of domain Posts to an HTTP list
// response DTO.
func ToPostListResponse(posts []content.Post) PostListResponse {
	items := make([]PostResponse, len(posts))
	for i := range posts {
		items[i] = ToPostResponse(&posts[i])
	}
	return PostListResponse{Posts: items, Count: len(items)}
}

// BlockDTO is a single page block in requests and responses. Block order is
// positional: the JSON array order is the display order.
type BlockDTO struct {
	Kind string `json:"kind"`
	Body string `json:"body"`
}

// PageRequest is the JSON body for creating or replacing a marketing page.
type PageRequest struct {
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Blocks    []BlockDTO `json:"blocks,omitempty"`
	Published bool       `json:"published"`
}

// ToDomain converts the request to a domain Page.
func (r *PageRequest) ToDomain() *content.Page {
	blocks := make([]content.Block, len(r.Blocks))
	for i, b := range r.Blocks {
		blocks[i] = content.Block{Kind: b.Kind, Body: b.Body}
	}
	return &content.Page{
		Title:     r.Title,
		Slug:      r.Slug,
		Blocks:    blocks,
		Published: r.Published,
	}
}

// Validate checks the request against the page business rules.
func (r *PageRequest) Validate() error {
	return r.ToDomain().Validate()
}

// MoveBlockRequest is the JSON body for reordering a page block one step.
type MoveBlockRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

// Validate checks that direction is "up" or "down". Index bounds are
// checked by the service against the page's current block count.
func (r *MoveBlockRequest) Validate() error {
	switch strings.ToLower(r.Direction) {
	case "up", "down":
		return nil
	default:
		return &domain.ValidationError{Fields: map[string]string{
			"direction": `must be "up" or "down"`,
		}}
	}
}

// Offset maps the direction word to the signed step the service expects.
func (r *MoveBlockRequest) Offset() int {
	if strings.ToLower(r.Direction) == "up" {
		return -1
	}
	return 1
}

// PageResponse represents a marketing page in HTTP responses.
type PageResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Blocks    []BlockDTO `json:"blocks"`
	Published bool       `json:"published"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// ToPageResponse converts a domain Page to an HTTP response DTO.
func ToPageResponse(p *content.Page) PageResponse {
	blocks := make([]BlockDTO, len(p.Blocks))
	for i, b := range p.Blocks {
		blocks[i] = BlockDTO{Kind: b.Kind, Body: b.Body}
	}
	return PageResponse{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Blocks:    blocks,
		Published: p.Published,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// PageListResponse represents a list of marketing pages in HTTP responses.
type PageListResponse struct {
	Pages []PageResponse `json:"pages"`
	Count int            `json:"count"`
}

// ToPageListResponse converts a slice of domain Pages to an HTTP list
// response DTO.
func ToPageListResponse(pages []content.Page) PageListResponse {
	items := make([]PageResponse, len(pages))
	for i := range pages {
		items[i] = ToPageResponse(&pages[i])
	}
	return PageListResponse{Pages: items, Count: len(items)}
}

// TeamMemberRequest is the JSON body for creating or replacing a team
// member profile.
type TeamMemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// ToDomain converts the request to a domain TeamMember.
func (r *TeamMemberRequest) ToDomain() *content.TeamMember {
	return &content.TeamMember{
		Name:  r.Name,
		Role:  r.Role,
		Bio:   r.Bio,
		Photo: r.Photo,
	}
}

// Validate checks the request against the team member business rules.
func (r *TeamMemberRequest) Validate() error {
	return r.ToDomain().Validate()
}

// TeamMemberResponse represents a team member in HTTP responses.
type TeamMemberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	Photo     string `json:"photo,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToTeamMemberResponse converts a domain TeamMember to an HTTP response DTO.
func ToTeamMemberResponse(m *content.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Bio:       m.Bio,
		Photo:     m.Photo,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

// TeamListResponse represents a list of team members in HTTP responses.
type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Count   int                  `json:"count"`
}

// ToTeamListResponse converts a slice of domain TeamMembers to an HTTP list
// response DTO.
func ToTeamListResponse(members []content.TeamMember) TeamListResponse {
	items := make([]TeamMemberResponse, len(members))
	for i := range members {
		items[i] = ToTeamMemberResponse(&members[i])
	}
	return TeamListResponse{Members: items, Count: len(items)}
}

// TestimonialRequest is the JSON body for creating or replacing a
// testimonial. The Approved flag is workflow-owned and never writable here.
type TestimonialRequest struct {
	Author  string `json:"author"`
	Company string `json:"company,omitempty"`
	Quote   string `json:"quote"`
}

// ToDomain converts the request to a domain Testimonial.
func (r *TestimonialRequest) ToDomain() *content.Testimonial {
	return &content.Testimonial{
		Author:  r.Author,
		Company: r.Company,
		Quote:   r.Quote,
	}
}

// Validate checks the request against the testimonial business rules.
func (r *TestimonialRequest) Validate() error {
	return r.ToDomain().Validate()
}

// TestimonialResponse represents a testimonial in HTTP responses.
type TestimonialResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Company   string `json:"company,omitempty"`
	Quote     string `json:"quote"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToTestimonialResponse converts a domain Testimonial to an HTTP response DTO.
func ToTestimonialResponse(t *content.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Author:    t.Author,
		Company:   t.Company,
		Quote:     t.Quote,
		Approved:  t.Approved,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

// TestimonialListResponse represents a list of testimonials in HTTP
// responses.
type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Count        int                   `json:"count"`
}

// ToTestimonialListResponse converts a slice of domain Testimonials to an
// HTTP list response DTO.
func ToTestimonialListResponse(testimonials []content.Testimonial) TestimonialListResponse {
	items := make([]TestimonialResponse, len(testimonials))
	for i := range testimonials {
		items[i] = ToTestimonialResponse(&testimonials[i])
	}
	return TestimonialListResponse{Testimonials: items, Count: len(items)}
}

// SubscribeRequest is the JSON body for newsletter signup and unsubscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate checks that a plausible email address is present.
func (r *SubscribeRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return &domain.ValidationError{Fields: map[string]string{"email": domain.MsgRequired}}
	}
	if !strings.Contains(email, "@") {
		return &domain.ValidationError{Fields: map[string]string{"email": "must be an email address"}}
	}
	return nil
}

// SubscriberResponse represents a newsletter subscriber in HTTP responses.
type SubscriberResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToSubscriberResponse converts a domain Subscriber to an HTTP response DTO.
func ToSubscriberResponse(s *content.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:        s.ID,
		Email:     s.Email,
		Status:    s.Status.String(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// SubscriberListResponse represents a list of subscribers in HTTP responses.
type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	Count       int                  `json:"count"`
}

// ToSubscriberListResponse converts a slice of domain Subscribers to an
// HTTP list response DTO.
func ToSubscriberListResponse(subscribers []content.Subscriber) SubscriberListResponse {
	items := make([]SubscriberResponse, len(subscribers))
	for i := range subscribers {
		items[i] = ToSubscriberResponse(&subscribers[i])
	}
	return SubscriberListResponse{Subscribers: items, Count: len(items)}
}
