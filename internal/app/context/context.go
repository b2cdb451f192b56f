// Package appctx provides request-scoped staging of store mutations.
//
// The store has no cross-collection transactions, so flows that must touch
// two collections together (approving an expense debits its budget) stage
// each write as a domain.Action and commit them as one unit:
//
//	rc := appctx.New(ctx)
//	rc.AddAction(&setExpenseStatusAction{...})
//	rc.AddAction(&debitBudgetAction{...})
//	err := rc.Commit(ctx)
//
// If a later action fails, earlier completed actions are rolled back in
// reverse order. A RequestContext is created per request and must not be
// shared between requests.
package appctx

import (
	"context"
	"errors"
	"sync"

	"github.com/glowtours/backoffice/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// RequestContext is a request-scoped queue of staged store mutations. It
// embeds context.Context so staged actions observe the request's
// cancellation and deadline.
type RequestContext struct {
	context.Context

	queueMu   sync.Mutex
	actions   []domain.Action
	committed bool
}

// New creates a RequestContext wrapping the given context.Context with an
// empty action queue.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx for retrieval by FromContext.
// The HTTP middleware installs one per inbound request.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx. When none is
// present (direct service calls, tests) it returns a fresh one wrapping
// ctx.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return New(ctx)
}

// AddAction stages an action for later execution by Commit. Actions execute
// in the order they were added.
//
// Returns ErrNilAction if action is nil, or ErrAlreadyCommitted if the
// RequestContext has already been committed.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.actions = append(rc.actions, action)
	return nil
}
