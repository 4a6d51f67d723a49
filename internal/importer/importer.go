package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"familygarden/internal/config"
	"familygarden/internal/duplicates"
	"familygarden/internal/fileutil"
	"familygarden/internal/gedcom"
	"familygarden/internal/logging"
	"familygarden/internal/store"
)

// Store is the persistence the importer reads existing persons from and
// commits batches to.
type Store interface {
	ListExistingPersons(ctx context.Context) ([]duplicates.ExistingPerson, error)
	CommitImport(ctx context.Context, batch store.Batch, persons []store.Person, families []store.Family) error
	FindBatchByChecksum(ctx context.Context, checksum string) (*store.Batch, error)
}

// Importer coordinates previews and commits against one tree store.
type Importer struct {
	store     Store
	cfg       *config.Config
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time
	lockRetry time.Duration
}

// Preview is the parsed file plus duplicate detection against the tree.
type Preview struct {
	SourceFile     string              `json:"source_file"`
	Checksum       string              `json:"checksum"`
	Label          string              `json:"label"`
	Threshold      int                 `json:"threshold"`
	ExistingCount  int                 `json:"existing_count"`
	Parse          *gedcom.ParseResult `json:"parse"`
	Detection      duplicates.Result   `json:"detection"`
	Stats          gedcom.Stats        `json:"stats"`

	// PreviousImport is the latest batch committed from a byte-identical
	// file, if any.
	PreviousImport *store.Batch `json:"previous_import,omitempty"`
}

// New builds an Importer. The logger may be nil.
func New(st Store, cfg *config.Config, logger *slog.Logger) (*Importer, error) {
	if st == nil || cfg == nil {
		return nil, errors.New("importer requires store and config")
	}
	return &Importer{
		store:     st,
		cfg:       cfg,
		logger:    logging.ForComponent(logger, "importer"),
		newID:     newID,
		now:       time.Now,
		lockRetry: 100 * time.Millisecond,
	}, nil
}

// Preview reads, validates and parses path, then runs duplicate detection
// against the persons already in the store.
func (i *Importer) Preview(ctx context.Context, path string) (*Preview, error) {
	ctx = logging.WithSourceFile(ctx, path)
	logger := logging.WithContext(ctx, i.logger)

	started := time.Now()
	content, err := ReadFile(i.cfg, path)
	if err != nil {
		logger.Info("file rejected", logging.Error(err))
		return nil, err
	}
	checksum := fileutil.Checksum([]byte(content))
	result, err := parseContent(path, content)
	if err != nil {
		logger.Info("file rejected", logging.Error(err))
		return nil, err
	}
	stats := result.Stats()
	logger.Info("gedcom parsed",
		logging.Int("individuals", stats.Individuals),
		logging.Int("families", stats.Families),
		logging.Int("errors", stats.Errors),
		logging.Int("warnings", stats.Warnings),
		logging.Duration("elapsed", time.Since(started)),
	)
	if len(result.Warnings) > 0 {
		logging.EventParseWarnings.Warn(ctx, logger, "gedcom parsed with warnings",
			logging.Int("warnings", len(result.Warnings)),
			logging.String("first_warning", result.Warnings[0]),
		)
	}

	previous, err := i.store.FindBatchByChecksum(ctx, checksum)
	if err != nil {
		return nil, fmt.Errorf("look up previous import: %w", err)
	}
	if previous != nil {
		logging.EventReimport.Warn(ctx, logger, "file was already imported",
			logging.String("previous_batch", previous.ID),
		)
	}

	existing, err := i.store.ListExistingPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing persons: %w", err)
	}

	threshold := i.cfg.Import.DuplicateThreshold
	detection := duplicates.DetectDuplicates(result.Individuals, existing, threshold)
	logger.Info("duplicate detection complete",
		logging.Int("existing", len(existing)),
		logging.Int("threshold", threshold),
		logging.Int("duplicates", len(detection.Duplicates)),
		logging.Int("unique", len(detection.UniquePersons)),
	)

	return &Preview{
		SourceFile:     path,
		Checksum:       checksum,
		Label:          deriveLabel(path),
		Threshold:      threshold,
		ExistingCount:  len(existing),
		Parse:          result,
		Detection:      detection,
		Stats:          stats,
		PreviousImport: previous,
	}, nil
}

// ParseFile reads path within the configured size limit, checks that it
// looks like GEDCOM and parses it. A parse that yields errors and no
// individuals fails with ErrParseFailed; any other result is returned with
// its errors and warnings for the caller to report.
func ParseFile(cfg *config.Config, path string) (*gedcom.ParseResult, error) {
	content, err := ReadFile(cfg, path)
	if err != nil {
		return nil, err
	}
	return parseContent(path, content)
}

func parseContent(path, content string) (*gedcom.ParseResult, error) {
	if !gedcom.IsValidGedcomFile(content) {
		return nil, fmt.Errorf("%w: %s has no HEAD, INDI or FAM record near the top", ErrInvalidFile, filepath.Base(path))
	}
	result := gedcom.Parse(content)
	if result.HasErrors() && len(result.Individuals) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrParseFailed, result.Errors[0])
	}
	return result, nil
}

// ReadFile returns the content of path, rejecting directories and files
// above the configured size limit.
func ReadFile(cfg *config.Config, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat gedcom file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
	}
	if limit := cfg.MaxFileBytes(); limit > 0 && info.Size() > limit {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d MB", ErrFileTooLarge, info.Size(), cfg.Import.MaxFileMB)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read gedcom file: %w", err)
	}
	return string(data), nil
}
