// Package agent defines the recruitment-agency partner entity.
package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Agent represents a partner agency identity whose status governs portal
// access. Zero or more candidates may reference an agent.
type Agent struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Country   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (a Agent) Key() string { return a.ID }

// Validate checks business rules for the Agent entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *Agent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Company) == "" {
		fields["company"] = domain.MsgRequired
	}
	if !a.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", a.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
