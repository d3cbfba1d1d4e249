// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package log provides structured logging utilities and configuration for the service.
package log

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	slogotel "github.com/remychantenay/slog-otel"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/redaction"
)

type ctxKey string

const (
	slogFields      ctxKey = "slog_fields"
	logLevelDefault        = slog.LevelDebug

	debug = "debug"
	warn  = "warn"
	info  = "info"

	priorityCritical = "critical"
)

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so sibling contexts never share a backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)
		return context.WithValue(parent, slogFields, append(attrs, attr))
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// handlerOptions reads LOG_LEVEL and LOG_ADD_SOURCE
func handlerOptions() *slog.HandlerOptions {
	logOptions := &slog.HandlerOptions{}

	logLevel := os.Getenv("LOG_LEVEL")
	switch logLevel {
	case debug:
		logOptions.Level = slog.LevelDebug
	case warn:
		logOptions.Level = slog.LevelWarn
	case info:
		logOptions.Level = slog.LevelInfo
	default:
		logOptions.Level = logLevelDefault
	}

	addSource := os.Getenv("LOG_ADD_SOURCE")
	logOptions.AddSource = addSource == "true"

	slog.Info("log config",
		"logLevel", logLevel,
		"LOG_ADD_SOURCE", logOptions.AddSource,
	)

	return logOptions
}

// NewHandler builds the service handler writing JSON to w: context attributes
// from AppendCtx first, then trace and span IDs from the active span.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slogotel.OtelHandler{
		Next: contextHandler{slog.NewJSONHandler(w, opts)},
	}
}

// InitStructureLogConfig sets the structured log behavior
func InitStructureLogConfig() {
	h := NewHandler(os.Stdout, handlerOptions())
	log.SetFlags(log.Llongfile)
	slog.SetDefault(slog.New(h))
}

// Priority creates a slog.Attr for error priority classification
func Priority(level string) slog.Attr {
	return slog.String("priority", level)
}

// PriorityCritical creates a slog.Attr for critical errors
// this is used to identify critical errors in the logs
// the ones that should be escalated to the team
func PriorityCritical() slog.Attr {
	return Priority(priorityCritical)
}

// Identity creates a group value for a "Name <email>" identity with both
// parts redacted.
//
// Example usage:
//
//	slog.InfoContext(ctx, "author resolved",
//	    "contributor", log.Identity(c.Name(), c.Email()))
//
// Logs:
//
//	"contributor": {"name": "f*** b***", "email": "b***@bar.com"}
func Identity(name, email string) slog.Value {
	return slog.GroupValue(
		slog.String("name", redaction.RedactName(name)),
		slog.String("email", redaction.RedactEmail(email)),
	)
}
