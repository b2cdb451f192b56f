// Package content defines the marketing-site entities managed from the
// back office: blog posts, builder pages, team members, testimonials, and
// newsletter subscribers.
package content

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Post represents a blog post. Only published posts appear on the public
// surface.
type Post struct {
	ID        string
	Title     string
	Slug      string
	Author    string
	Body      string
	CoverImg  string // data URL, optional
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (p Post) Key() string { return p.ID }

// Validate checks business rules for the Post entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Post) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Slug) == "" {
		fields["slug"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Body) == "" {
		fields["body"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
