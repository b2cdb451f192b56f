package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Application represents a submission against a vacancy. VacancyID is a weak
// reference and may point at a deleted vacancy.
type Application struct {
	ID        string
	VacancyID string
	Name      string
	Email     string
	Phone     string
	Resume    string // data URL, optional
	AppliedAt time.Time
	Status    ApplicationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (a Application) Key() string { return a.ID }

// Validate checks business rules for the Application entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *Application) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.VacancyID) == "" {
		fields["vacancy_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if !a.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", a.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplicationStatus represents an application's review state. Progression is
// forward-only; rejected and hired are terminal.
type ApplicationStatus string

const (
	ApplicationNew      ApplicationStatus = "new"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationRejected ApplicationStatus = "rejected"
	ApplicationHired    ApplicationStatus = "hired"
)

// IsValid returns true if the status is one of the defined constants.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationNew, ApplicationReviewed, ApplicationRejected, ApplicationHired:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s ApplicationStatus) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is an allowed review
// step: new applications can be reviewed or rejected, reviewed applications
// can be hired or rejected, and terminal states admit nothing.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	switch s {
	case ApplicationNew:
		return next == ApplicationReviewed || next == ApplicationRejected
	case ApplicationReviewed:
		return next == ApplicationHired || next == ApplicationRejected
	default:
		return false
	}
}
