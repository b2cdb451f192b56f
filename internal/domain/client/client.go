// Package client defines the corporate customer entity.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Client represents a corporate customer. Verified is flipped by the
// company-registry verification flow, never set directly by callers.
type Client struct {
	ID           string
	Company      string
	ContactName  string
	ContactEmail string
	ContactPhone string
	RegistryNo   string
	Verified     bool
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key implements store.Record.
func (c Client) Key() string { return c.ID }

// Validate checks business rules for the Client entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Client) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Company) == "" {
		fields["company"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.ContactName) == "" {
		fields["contact_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.ContactEmail) == "" {
		fields["contact_email"] = domain.MsgRequired
	}
	if !c.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", c.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Status represents a client's account state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
