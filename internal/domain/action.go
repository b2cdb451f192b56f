package domain

import "context"

// Action represents a single executable store mutation with rollback
// capability. Implementations should be idempotent where possible so a
// rollback after a partial commit leaves the collections consistent.
//
// Action is defined in the domain layer so that entity sub-packages and
// services can reference it without depending on the application layer.
type Action interface {
	// Execute performs the mutation. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil. The context may
	// differ from the one passed to Execute.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "debit budget 42 by 150.00").
	Description() string
}
