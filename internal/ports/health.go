package ports

import "context"

// HealthChecker is implemented by components that can report their own
// health: the store and the company-registry client both do.
type HealthChecker interface {
	// Name identifies the component in readiness responses, for
	// example "registry-api" or "store".
	Name() string

	// HealthCheck returns nil when healthy. Implementations honor
	// context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check, keyed by checker name.
	// A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
