// Package candidate defines the recruitment-pipeline candidate entity.
package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Candidate represents a person moving through the recruitment pipeline.
// AgentID is a weak reference: deleting an agent does not cascade to the
// candidates that reference it.
type Candidate struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Nationality string
	PassportNo  string
	Position    string
	Resume      string // data URL, optional
	Status      Status
	AgentID     string // optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Key implements store.Record.
func (c Candidate) Key() string { return c.ID }

// Validate checks business rules for the Candidate entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Candidate) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Position) == "" {
		fields["position"] = domain.MsgRequired
	}
	if !c.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", c.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
