// Package middleware provides the inbound HTTP request pipeline.
//
// The server installs the chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext → Handler
//
// Each middleware is a func(http.Handler) http.Handler; Chain composes them.
package middleware

import "net/http"

// responseWriter wraps http.ResponseWriter to record the status code and the
// byte count for the recovery, otel, and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the status code and forwards it. Only the first call
// takes effect.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write forwards to the wrapped writer; an implicit 200 is recorded if
// WriteHeader was never called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.headerWritten = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer so http.ResponseController and
// interface assertions (http.Flusher, http.Hijacker) still work.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
