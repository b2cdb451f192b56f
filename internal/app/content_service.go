package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/attachment"
	"github.com/glowtours/backoffice/internal/domain/content"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that ContentService implements ports.ContentService.
var _ ports.ContentService = (*ContentService)(nil)

// ContentService implements ports.ContentService over the marketing-site
// collections.
type ContentService struct {
	store     *store.Store
	logger    *slog.Logger
	maxAttach int
}

// NewContentService creates a ContentService. maxAttachBytes caps the
// decoded size of image attachments; zero disables the cap.
func NewContentService(st *store.Store, logger *slog.Logger, maxAttachBytes int) *ContentService {
	return &ContentService{store: st, logger: logger, maxAttach: maxAttachBytes}
}

// --- Blog posts ---

// ListPosts returns posts matching the search term, in insertion order.
func (s *ContentService) ListPosts(_ context.Context, search string) ([]content.Post, error) {
	all := s.store.Posts.List()
	return store.Filter(all, func(p content.Post) bool {
		return store.MatchFold(search, p.Title, p.Author, p.Slug)
	}), nil
}

// PublishedPosts returns the posts visible on the public site.
func (s *ContentService) PublishedPosts(_ context.Context) ([]content.Post, error) {
	all := s.store.Posts.List()
	return store.Filter(all, func(p content.Post) bool { return p.Published }), nil
}

// GetPost returns a single post by id.
func (s *ContentService) GetPost(_ context.Context, id string) (*content.Post, error) {
	p, err := s.store.Posts.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePost validates and stores a new blog post.
func (s *ContentService) CreatePost(ctx context.Context, p *content.Post) (*content.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(p.CoverImg, attachment.KindImage, s.maxAttach); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = s.store.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.store.Posts.Add(*p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "post created",
		slog.String("post_id", p.ID),
		slog.String("slug", p.Slug),
	)
	return p, nil
}

// UpdatePost replaces all fields of an existing post.
func (s *ContentService) UpdatePost(ctx context.Context, id string, p *content.Post) (*content.Post, error) {
	existing, err := s.store.Posts.Get(id)
	if err != nil {
		return nil, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(p.CoverImg, attachment.KindImage, s.maxAttach); err != nil {
		return nil, err
	}
	if err := s.store.Posts.Update(*p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "post updated", slog.String("post_id", id))
	return p, nil
}

// DeletePost removes a post by id.
func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	if err := s.store.Posts.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "post deleted", slog.String("post_id", id))
	return nil
}

// --- Builder pages ---

// ListPages returns pages matching the search term, in insertion order.
func (s *ContentService) ListPages(_ context.Context, search string) ([]content.Page, error) {
	all := s.store.Pages.List()
	return store.Filter(all, func(p content.Page) bool {
		return store.MatchFold(search, p.Title, p.Slug)
	}), nil
}

// GetPage returns a single page by id.
func (s *ContentService) GetPage(_ context.Context, id string) (*content.Page, error) {
	p, err := s.store.Pages.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PageBySlug returns a published page by its public slug.
func (s *ContentService) PageBySlug(_ context.Context, slug string) (*content.Page, error) {
	for _, p := range s.store.Pages.List() {
		if p.Slug == slug && p.Published {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("page %q: %w", slug, domain.ErrNotFound)
}

// CreatePage validates and stores a new page.
func (s *ContentService) CreatePage(ctx context.Context, p *content.Page) (*content.Page, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = s.store.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.store.Pages.Add(*p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "page created",
		slog.String("page_id", p.ID),
		slog.String("slug", p.Slug),
	)
	return p, nil
}

// UpdatePage replaces all fields of an existing page, blocks included.
func (s *ContentService) UpdatePage(ctx context.Context, id string, p *content.Page) (*content.Page, error) {
	existing, err := s.store.Pages.Get(id)
	if err != nil {
		return nil, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Pages.Update(*p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "page updated", slog.String("page_id", id))
	return p, nil
}

// DeletePage removes a page by id.
func (s *ContentService) DeletePage(ctx context.Context, id string) error {
	if err := s.store.Pages.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "page deleted", slog.String("page_id", id))
	return nil
}

// MoveBlock swaps a page block with its neighbor (-1 up, +1 down) and
// persists the new order.
func (s *ContentService) MoveBlock(ctx context.Context, pageID string, index, direction int) (*content.Page, error) {
	p, err := s.store.Pages.Get(pageID)
	if err != nil {
		return nil, err
	}

	if err := p.MoveBlock(index, direction); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.Pages.Update(p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "page block moved",
		slog.String("page_id", pageID),
		slog.Int("index", index),
		slog.Int("direction", direction),
	)
	return &p, nil
}

// --- Team members ---

// ListTeam returns team members matching the search term, in insertion order.
func (s *ContentService) ListTeam(_ context.Context, search string) ([]content.TeamMember, error) {
	all := s.store.TeamMembers.List()
	return store.Filter(all, func(m content.TeamMember) bool {
		return store.MatchFold(search, m.Name, m.Role)
	}), nil
}

// GetTeamMember returns a single team member by id.
func (s *ContentService) GetTeamMember(_ context.Context, id string) (*content.TeamMember, error) {
	m, err := s.store.TeamMembers.Get(id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateTeamMember validates and stores a new team member.
func (s *ContentService) CreateTeamMember(ctx context.Context, m *content.TeamMember) (*content.TeamMember, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(m.Photo, attachment.KindImage, s.maxAttach); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m.ID = s.store.NewID()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.store.TeamMembers.Add(*m); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "team member created", slog.String("member_id", m.ID))
	return m, nil
}

// UpdateTeamMember replaces all fields of an existing team member.
func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, m *content.TeamMember) (*content.TeamMember, error) {
	existing, err := s.store.TeamMembers.Get(id)
	if err != nil {
		return nil, err
	}

	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(m.Photo, attachment.KindImage, s.maxAttach); err != nil {
		return nil, err
	}
	if err := s.store.TeamMembers.Update(*m); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "team member updated", slog.String("member_id", id))
	return m, nil
}

// DeleteTeamMember removes a team member by id.
func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	if err := s.store.TeamMembers.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "team member deleted", slog.String("member_id", id))
	return nil
}

// --- Testimonials ---

// ListTestimonials returns testimonials matching the search term.
func (s *ContentService) ListTestimonials(_ context.Context, search string) ([]content.Testimonial, error) {
	all := s.store.Testimonials.List()
	return store.Filter(all, func(t content.Testimonial) bool {
		return store.MatchFold(search, t.Author, t.Company, t.Quote)
	}), nil
}

// ApprovedTestimonials returns the testimonials visible on the public site.
func (s *ContentService) ApprovedTestimonials(_ context.Context) ([]content.Testimonial, error) {
	all := s.store.Testimonials.List()
	return store.Filter(all, func(t content.Testimonial) bool { return t.Approved }), nil
}

// CreateTestimonial validates and stores a new testimonial, unapproved.
func (s *ContentService) CreateTestimonial(ctx context.Context, t *content.Testimonial) (*content.Testimonial, error) {
	t.Approved = false
	if err := t.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t.ID = s.store.NewID()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.store.Testimonials.Add(*t); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "testimonial created", slog.String("testimonial_id", t.ID))
	return t, nil
}

// UpdateTestimonial replaces a testimonial's fields, preserving approval.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, t *content.Testimonial) (*content.Testimonial, error) {
	existing, err := s.store.Testimonials.Get(id)
	if err != nil {
		return nil, err
	}

	t.ID = existing.ID
	t.Approved = existing.Approved
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Testimonials.Update(*t); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "testimonial updated", slog.String("testimonial_id", id))
	return t, nil
}

// DeleteTestimonial removes a testimonial by id.
func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.store.Testimonials.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "testimonial deleted", slog.String("testimonial_id", id))
	return nil
}

// ApproveTestimonial marks a testimonial publishable.
func (s *ContentService) ApproveTestimonial(ctx context.Context, id string) (*content.Testimonial, error) {
	t, err := s.store.Testimonials.Get(id)
	if err != nil {
		return nil, err
	}

	t.Approved = true
	t.UpdatedAt = time.Now().UTC()

	if err := s.store.Testimonials.Update(t); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "testimonial approved", slog.String("testimonial_id", id))
	return &t, nil
}

// --- Newsletter ---

// Subscribe records a newsletter signup. A previously unsubscribed address
// is reactivated rather than duplicated; an already-subscribed address is
// returned as-is.
func (s *ContentService) Subscribe(ctx context.Context, email string) (*content.Subscriber, error) {
	sub := content.Subscriber{Email: strings.TrimSpace(email), Status: content.Subscribed}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if existing, ok := s.findSubscriber(sub.Email); ok {
		if existing.Status == content.Subscribed {
			return &existing, nil
		}
		existing.Status = content.Subscribed
		existing.UpdatedAt = time.Now().UTC()
		if err := s.store.Subscribers.Update(existing); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "subscriber reactivated", slog.String("subscriber_id", existing.ID))
		return &existing, nil
	}

	now := time.Now().UTC()
	sub.ID = s.store.NewID()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.store.Subscribers.Add(sub); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "subscriber added", slog.String("subscriber_id", sub.ID))
	return &sub, nil
}

// Unsubscribe flips a subscriber to unsubscribed, keeping the record.
func (s *ContentService) Unsubscribe(ctx context.Context, email string) (*content.Subscriber, error) {
	sub, ok := s.findSubscriber(strings.TrimSpace(email))
	if !ok {
		return nil, fmt.Errorf("subscriber %q: %w", email, domain.ErrNotFound)
	}

	sub.Status = content.Unsubscribed
	sub.UpdatedAt = time.Now().UTC()

	if err := s.store.Subscribers.Update(sub); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "subscriber removed", slog.String("subscriber_id", sub.ID))
	return &sub, nil
}

// ListSubscribers returns subscribers matching the search term.
func (s *ContentService) ListSubscribers(_ context.Context, search string) ([]content.Subscriber, error) {
	all := s.store.Subscribers.List()
	return store.Filter(all, func(sub content.Subscriber) bool {
		return store.MatchFold(search, sub.Email)
	}), nil
}

// findSubscriber locates a subscriber by address, case-insensitively.
func (s *ContentService) findSubscriber(email string) (content.Subscriber, bool) {
	for _, sub := range s.store.Subscribers.List() {
		if strings.EqualFold(sub.Email, email) {
			return sub, true
		}
	}
	return content.Subscriber{}, false
}
