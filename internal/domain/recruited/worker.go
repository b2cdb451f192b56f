// Package recruited defines the terminal record of a successfully placed
// worker. A Worker is deliberately decoupled from the Candidate pipeline:
// there is no foreign key back to a candidate, and deleting either record
// never affects the other.
package recruited

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Worker holds immigration and employment metadata for a placed worker,
// with optional photo and work-permit attachments stored as data URLs.
type Worker struct {
	ID           string
	Name         string
	PassportNo   string
	Nationality  string
	Employer     string
	JobTitle     string
	ArrivalDate  time.Time
	WorkPermitNo string
	Photo        string // data URL, optional
	Permit       string // data URL, optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key implements store.Record.
func (w Worker) Key() string { return w.ID }

// Validate checks business rules for the Worker entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (w *Worker) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(w.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(w.PassportNo) == "" {
		fields["passport_no"] = domain.MsgRequired
	}
	if strings.TrimSpace(w.Employer) == "" {
		fields["employer"] = domain.MsgRequired
	}
	if strings.TrimSpace(w.JobTitle) == "" {
		fields["job_title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
