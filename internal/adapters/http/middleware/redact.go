package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/glowtours/backoffice/internal/platform/logging"
)

// RedactHeaders flattens an http.Header into slog attributes for the request
// log. Headers in logging.SensitiveHeaders are replaced with "[REDACTED]";
// everything else is kept as-is, multi-value headers joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
