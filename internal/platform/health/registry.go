// Package health tracks the checkers behind the readiness endpoint: the
// store and the company-registry client register here at startup.
package health

import (
	"context"
	"sync"

	"github.com/glowtours/backoffice/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry collects [ports.HealthChecker] implementations and runs them all
// on every readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register is safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and keys the results by checker name; nil means
// healthy. The slice is copied under the read lock so checks themselves run
// unlocked.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}
