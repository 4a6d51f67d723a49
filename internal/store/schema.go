package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

const treeSchemaVersion = 1

// ErrSchemaMismatch reports a database this build cannot read or extend.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// migrate creates the tree tables in an empty database and checks the
// version of an existing one.
func (s *Store) migrate(ctx context.Context) error {
	version, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if version == treeSchemaVersion {
		return nil
	}
	if version == 0 {
		var tables int
		if err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table'",
		).Scan(&tables); err != nil {
			return fmt.Errorf("inspect database: %w", err)
		}
		if tables == 0 {
			return s.createTables(ctx)
		}
	}
	return fmt.Errorf("%w: %s has version %d, this build reads %d (move it aside and re-import)",
		ErrSchemaMismatch, s.path, version, treeSchemaVersion)
}

// createTables runs schema.sql and stamps the version in one transaction, so
// an interrupted first open leaves an empty database behind.
func (s *Store) createTables(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create tree tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", treeSchemaVersion)); err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return tx.Commit()
}

// SchemaVersion reports the version stamped in the database header; zero
// for a database this package never initialized.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ensureContext(ctx), "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// ExpectedSchemaVersion is the version this build creates and accepts.
func ExpectedSchemaVersion() int {
	return treeSchemaVersion
}
