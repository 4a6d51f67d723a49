package logging

import (
	"context"
	"log/slog"
	"time"
)

type Attr = slog.Attr

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Error keys err under "error"; a nil error still leaves a visible field.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Event classifies a warning or failure in the import log so that a reader
// can tell what happened to the tree without the surrounding lines.
type Event struct {
	Type   string
	Hint   string
	Impact string
}

// Import events with their standing hint and impact.
var (
	EventParseWarnings = Event{
		Type:   "parse_warnings",
		Hint:   "inspect the file with gardenctl parse",
		Impact: "affected individuals import without a name",
	}
	EventReimport = Event{
		Type:   "reimport",
		Hint:   "skip the duplicates or remove the earlier import",
		Impact: "individuals will be reported as probable duplicates",
	}
	EventCommitFailed = Event{
		Type: "import_commit",
		Hint: "no rows were written; retry the import",
	}
)

func (e Event) fields() []any {
	fields := make([]any, 0, 3)
	fields = append(fields, slog.String(FieldEventType, e.Type))
	if e.Hint != "" {
		fields = append(fields, slog.String(FieldErrorHint, e.Hint))
	}
	if e.Impact != "" {
		fields = append(fields, slog.String(FieldImpact, e.Impact))
	}
	return fields
}

// Warn logs msg at warn level tagged with e.
func (e Event) Warn(ctx context.Context, logger *slog.Logger, msg string, attrs ...Attr) {
	e.log(ctx, logger, slog.LevelWarn, msg, attrs)
}

// Fail logs msg at error level tagged with e.
func (e Event) Fail(ctx context.Context, logger *slog.Logger, msg string, attrs ...Attr) {
	e.log(ctx, logger, slog.LevelError, msg, attrs)
}

func (e Event) log(ctx context.Context, logger *slog.Logger, level slog.Level, msg string, attrs []Attr) {
	if logger == nil {
		return
	}
	args := e.fields()
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Log(ctx, level, msg, args...)
}

func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForComponent tags logger with the subsystem that owns its records.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
