package content

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
)

// Subscriber represents a newsletter signup. Unsubscribing keeps the record
// with an unsubscribed status rather than deleting it, so repeat signups are
// reactivations.
type Subscriber struct {
	ID        string
	Email     string
	Status    SubscriberStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key implements store.Record.
func (s Subscriber) Key() string { return s.ID }

// Validate checks business rules for the Subscriber entity.
func (s *Subscriber) Validate() error {
	fields := make(map[string]string)

	email := strings.TrimSpace(s.Email)
	if email == "" {
		fields["email"] = domain.MsgRequired
	} else if !strings.Contains(email, "@") {
		fields["email"] = "must be an email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SubscriberStatus represents a newsletter subscription state.
type SubscriberStatus string

const (
	Subscribed   SubscriberStatus = "subscribed"
	Unsubscribed SubscriberStatus = "unsubscribed"
)

// IsValid returns true if the status is one of the defined constants.
func (s SubscriberStatus) IsValid() bool {
	return s == Subscribed || s == Unsubscribed
}

// String implements fmt.Stringer.
func (s SubscriberStatus) String() string {
	return string(s)
}
