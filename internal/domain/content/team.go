package content

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// TeamMember represents a staff profile shown on the public site.
type TeamMember struct {
	ID        string
	Name      string
	Role      string
	Bio       string
	Photo     string // data URL, optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (m TeamMember) Key() string { return m.ID }

// Validate checks business rules for the TeamMember entity.
func (m *TeamMember) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.Role) == "" {
		fields["role"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Testimonial represents a quote from a placed worker or client. Only
// approved testimonials appear on the public surface.
type Testimonial struct {
	ID        string
	Author    string
	Company   string
	Quote     string
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (t Testimonial) Key() string { return t.ID }

// Validate checks business rules for the Testimonial entity.
func (t *Testimonial) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Author) == "" {
		fields["author"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Quote) == "" {
		fields["quote"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
