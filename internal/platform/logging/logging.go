// Package logging builds the process-wide slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The logging middleware stores an enriched logger on the request
// context; services pull it back out:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Service error logs name the operation and the entity involved, and
// attach the full error chain:
//
//	logger.ErrorContext(ctx, "failed to fetch candidate",
//	    slog.String("operation", "GetCandidate"),
//	    slog.String("candidate_id", id),
//	    slog.Any("error", err),
//	)
//
// Candidate records hold passport numbers and contact details, so every
// handler built here redacts those fields before they reach the sink.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New builds a *slog.Logger writing to w. Level is one of "debug",
// "info", "warn" or "error"; format "text" selects the text handler and
// anything else gets JSON. Debug level also records source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger stores logger on the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored on the context, or
// slog.Default() when none was stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Unrecognized levels fall back to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
