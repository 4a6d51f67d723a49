package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"familygarden/internal/config"
)

const logFileName = "familygarden.log"

// Options describes where and how records are written.
type Options struct {
	Level  string
	Format string
	// LogFile is opened for append, creating its directory.
	LogFile string
	// Writer receives records alongside LogFile. With neither set records
	// go to stderr.
	Writer io.Writer
}

// New builds a logger from opts. Debug level adds the caller to each record.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	out, err := openOutput(opts.LogFile, opts.Writer)
	if err != nil {
		return nil, err
	}
	addSource := level <= slog.LevelDebug

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		return slog.New(newConsoleHandler(out, level, addSource)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:       level,
			AddSource:   addSource,
			ReplaceAttr: jsonAttr,
		})), nil
	}
	return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
}

// NewFromConfig logs to the tree's log file, echoing to stderr when echo is
// set. Stdout stays reserved for command output.
func NewFromConfig(cfg *config.Config, echo bool) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{})
	}
	opts := Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if cfg.Paths.LogDir != "" {
		opts.LogFile = FilePath(cfg)
	}
	if echo || opts.LogFile == "" {
		opts.Writer = os.Stderr
	}
	return New(opts)
}

// FilePath returns the log file inside the configured log directory.
func FilePath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.LogDir, logFileName)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func openOutput(logFile string, extra io.Writer) (io.Writer, error) {
	logFile = strings.TrimSpace(logFile)
	if logFile == "" {
		if extra == nil {
			return os.Stderr, nil
		}
		return extra, nil
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logFile, err)
	}
	if extra == nil {
		return file, nil
	}
	return io.MultiWriter(file, extra), nil
}

// jsonAttr shortens the built-in keys: "ts" in UTC RFC 3339, lowercase
// levels and base-name sources.
func jsonAttr(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "ts"
		if attr.Value.Kind() == slog.KindTime {
			attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	}
	return attr
}
