package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/glowtours/backoffice/internal/platform/logging"
)

// Logging logs request start and completion. A child logger carrying
// the request and correlation ids goes on the context via
// logging.WithLogger, so services and the registry client log with the
// same ids.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			// Headers only at debug, and redacted even then.
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(attrs))
				for _, a := range attrs {
					args = append(args, a)
				}
				reqLogger.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLogger.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(started)),
			)
		})
	}
}
