// Package job defines posted vacancies and the applications made against them.
package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Vacancy represents a posted role. Deleting a vacancy never deletes the
// applications that reference it; they keep their VacancyID and remain
// reviewable.
type Vacancy struct {
	ID          string
	Title       string
	Department  string
	Location    string
	Employment  string // e.g. "full-time", "contract"
	SalaryRange string
	Description string
	Status      VacancyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Key implements store.Record.
func (v Vacancy) Key() string { return v.ID }

// Validate checks business rules for the Vacancy entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (v *Vacancy) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(v.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(v.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if !v.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", v.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// VacancyStatus represents whether a vacancy accepts new applications.
type VacancyStatus string

const (
	VacancyOpen   VacancyStatus = "open"
	VacancyClosed VacancyStatus = "closed"
)

// IsValid returns true if the status is one of the defined constants.
func (s VacancyStatus) IsValid() bool {
	switch s {
	case VacancyOpen, VacancyClosed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s VacancyStatus) String() string {
	return string(s)
}
