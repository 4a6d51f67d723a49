package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one header line per record followed by its fields:
//
//	2024-05-01 10:00:00 INFO [importer] Batch 01234567 (family.ged) – committed
//	    - created: 12
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	level     slog.Leveler
	addSource bool

	subject subject
	fields  []field
	prefix  string
}

// subject holds the attrs lifted out of the field list into the header.
type subject struct {
	component  string
	batchID    string
	sourceFile string
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(out io.Writer, level slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, out: out, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.fields = slices.Clone(h.fields)
	for _, attr := range attrs {
		next.add(h.prefix, attr)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}
	rec := *h
	rec.fields = slices.Clone(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		rec.add(h.prefix, attr)
		return true
	})

	when := record.Time
	if when.IsZero() {
		when = time.Now()
	}
	var b strings.Builder
	b.WriteString(formatTimestamp(when))
	b.WriteString(" " + levelLabel(record.Level))
	if rec.subject.component != "" {
		b.WriteString(" [" + rec.subject.component + "]")
	}
	if s := rec.subject.String(); s != "" {
		b.WriteString(" " + s)
	}
	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}
	b.WriteString(" – " + message)
	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			fmt.Fprintf(&b, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	b.WriteByte('\n')
	for _, f := range rec.fields {
		b.WriteString("    - " + f.key + ": " + fieldValue(f.value) + "\n")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// add records attr under prefix. Header attrs go to the subject; a repeated
// key keeps its first position and takes the latest value.
func (h *consoleHandler) add(prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			h.add(prefix, member)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	if prefix == "" {
		switch attr.Key {
		case FieldComponent:
			h.subject.component = subjectValue(attr.Value)
			return
		case FieldBatchID:
			h.subject.batchID = subjectValue(attr.Value)
			return
		case FieldSourceFile:
			h.subject.sourceFile = subjectValue(attr.Value)
			return
		}
	}
	key := prefix + attr.Key
	if i := slices.IndexFunc(h.fields, func(f field) bool { return f.key == key }); i >= 0 {
		h.fields[i].value = attr.Value
		return
	}
	h.fields = append(h.fields, field{key: key, value: attr.Value})
}

// String renders "Batch 01234567 (family.ged)"; either half may be absent.
func (s subject) String() string {
	batch := strings.TrimSpace(s.batchID)
	if len(batch) > 8 {
		batch = batch[:8]
	}
	file := strings.TrimSpace(s.sourceFile)
	if file != "" {
		file = filepath.Base(file)
	}
	switch {
	case batch != "" && file != "":
		return "Batch " + batch + " (" + file + ")"
	case batch != "":
		return "Batch " + batch
	default:
		return file
	}
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}
