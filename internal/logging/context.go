package logging

import (
	"context"
	"log/slog"
)

// Standard structured logging keys.
const (
	FieldComponent  = "component"
	FieldBatchID    = "batch_id"
	FieldSourceFile = "source_file"
	FieldEventType  = "event_type"
	FieldErrorHint  = "error_hint"
	FieldImpact     = "impact"
)

type contextKey int

const (
	batchIDKey contextKey = iota
	sourceFileKey
)

// WithBatchID returns a context carrying the import batch identifier.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, batchIDKey, batchID)
}

// WithSourceFile returns a context carrying the path of the file being imported.
func WithSourceFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sourceFileKey, path)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := ctx.Value(batchIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldBatchID, id))
	}
	if path, ok := ctx.Value(sourceFileKey).(string); ok && path != "" {
		fields = append(fields, slog.String(FieldSourceFile, path))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, len(fields))
	for i, field := range fields {
		args[i] = field
	}
	return logger.With(args...)
}
