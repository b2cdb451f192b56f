package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/platform/logging"
)

// Commit executes all staged actions in insertion order. If any action
// fails, previously completed actions are rolled back in reverse order.
// Rollback errors are logged but do not affect the returned error.
//
// After Commit returns (whether success or failure), the RequestContext is
// marked as committed and no further actions can be staged.
//
// Returns ErrAlreadyCommitted if called more than once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	// Snapshot under lock. Once committed=true no goroutine can append via
	// AddAction, so iterating the snapshot without the lock is safe.
	actions := rc.actions
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.Int("total", len(actions)),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, actions[:i], logger)
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

// rollback reverses completed actions in reverse insertion order. Rollback
// errors are logged and do not stop the rollback of remaining actions.
func rollback(ctx context.Context, completed []domain.Action, logger *slog.Logger) {
	for i := len(completed) - 1; i >= 0; i-- {
		action := completed[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
