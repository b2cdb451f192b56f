package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/glowtours/backoffice/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey is this package's own context key; httpclient keeps its own
// so neither package reads the other's.
type requestIDKey struct{}

// WithRequestID stores the id under both this package's key and
// httpclient's, so the registry client forwards X-Request-ID without
// knowing about middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext returns the stored id, or "" when there is none.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID reuses an incoming X-Request-ID or mints a UUID, stores it on
// the context, and echoes it as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
