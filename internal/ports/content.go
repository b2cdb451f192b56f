package ports

import (
	"context"

	"github.com/glowtours/backoffice/internal/domain/content"
)

// ContentService defines the service port for the marketing-site content
// managed from the back office. Public handlers use the Published* variants,
// which narrow to publishable records only.
type ContentService interface {
	ListPosts(ctx context.Context, search string) ([]content.Post, error)
	PublishedPosts(ctx context.Context) ([]content.Post, error)
	GetPost(ctx context.Context, id string) (*content.Post, error)
	CreatePost(ctx context.Context, p *content.Post) (*content.Post, error)
	UpdatePost(ctx context.Context, id string, p *content.Post) (*content.Post, error)
	DeletePost(ctx context.Context, id string) error

	ListPages(ctx context.Context, search string) ([]content.Page, error)
	GetPage(ctx context.Context, id string) (*content.Page, error)

	// PageBySlug returns a published page by its public slug.
	// Returns domain.ErrNotFound for unknown or unpublished slugs.
	PageBySlug(ctx context.Context, slug string) (*content.Page, error)
	CreatePage(ctx context.Context, p *content.Page) (*content.Page, error)
	UpdatePage(ctx context.Context, id string, p *content.Page) (*content.Page, error)
	DeletePage(ctx context.Context, id string) error

	// MoveBlock swaps a page block with its neighbor (-1 up, +1 down).
	MoveBlock(ctx context.Context, pageID string, index, direction int) (*content.Page, error)

	ListTeam(ctx context.Context, search string) ([]content.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*content.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *content.TeamMember) (*content.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, m *content.TeamMember) (*content.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context, search string) ([]content.Testimonial, error)
	ApprovedTestimonials(ctx context.Context) ([]content.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *content.Testimonial) (*content.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, t *content.Testimonial) (*content.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	// ApproveTestimonial marks a testimonial publishable.
	ApproveTestimonial(ctx context.Context, id string) (*content.Testimonial, error)

	// Subscribe records a newsletter signup. Subscribing an address that
	// previously unsubscribed reactivates the existing record.
	Subscribe(ctx context.Context, email string) (*content.Subscriber, error)

	// Unsubscribe flips a subscriber to unsubscribed, keeping the record.
	// Returns domain.ErrNotFound for unknown addresses.
	Unsubscribe(ctx context.Context, email string) (*content.Subscriber, error)
	ListSubscribers(ctx context.Context, search string) ([]content.Subscriber, error)
}
