package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"familygarden/internal/gedcom"
)

// CommitImport writes a batch with its persons and families in one
// transaction. Family member ids must reference persons that are already
// stored or part of this batch.
func (s *Store) CommitImport(ctx context.Context, batch Batch, persons []Person, families []Family) error {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(batch.ID) == "" {
		return errors.New("commit import: batch id is required")
	}
	batch.Individuals = len(persons)
	batch.Families = len(families)

	return withBusyRetry(ctx, func() error {
		return s.commitImportTx(ctx, batch, persons, families)
	})
}

func (s *Store) commitImportTx(ctx context.Context, batch Batch, persons []Person, families []Family) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := formatTime(batch.CreatedAt)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO import_batches (`+batchColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		batch.ID, batch.Label, batch.SourceFile, nullableString(batch.SourceSHA256), created,
		batch.Individuals, batch.Families, batch.Duplicates, batch.Skipped,
	); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	personStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO persons (`+personColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare person insert: %w", err)
	}
	defer personStmt.Close()
	for _, p := range persons {
		if _, err := personStmt.ExecContext(ctx,
			p.ID,
			batch.ID,
			nullableString(p.GedcomID),
			nullableString(p.FirstNames),
			nullableString(p.LastName),
			nullableString(p.MaidenName),
			string(gedcom.ParseGender(string(p.Gender))),
			nullableString(p.BirthDate),
			nullableString(p.BirthPlace),
			nullableString(p.DeathDate),
			nullableString(p.DeathPlace),
			nullableString(p.Occupation),
			nullableString(p.Notes),
			created,
		); err != nil {
			return fmt.Errorf("insert person %s: %w", p.GedcomID, err)
		}
	}

	for _, f := range families {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO families (id, batch_id, gedcom_id, husband_id, wife_id, husband_ref, wife_ref,
                marriage_date, marriage_place, divorce_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID,
			batch.ID,
			nullableString(f.GedcomID),
			nullableString(f.HusbandID),
			nullableString(f.WifeID),
			nullableString(f.HusbandRef),
			nullableString(f.WifeRef),
			nullableString(f.MarriageDate),
			nullableString(f.MarriagePlace),
			nullableString(f.DivorceDate),
		); err != nil {
			return fmt.Errorf("insert family %s: %w", f.GedcomID, err)
		}
		for pos, child := range f.Children {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO family_children (family_id, position, person_id, child_ref) VALUES (?, ?, ?, ?)`,
				f.ID, pos, nullableString(child.PersonID), child.Ref,
			); err != nil {
				return fmt.Errorf("insert child %s of family %s: %w", child.Ref, f.GedcomID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// ListBatches returns committed imports, newest first.
func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT `+batchColumns+` FROM import_batches ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	batches := []Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}

// GetBatch fetches one batch by id, or nil when it does not exist.
func (s *Store) GetBatch(ctx context.Context, id string) (*Batch, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+batchColumns+` FROM import_batches WHERE id = ?`, id)
	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// FindBatchByChecksum returns the most recent batch imported from a file with
// the given SHA-256, or nil when none matches.
func (s *Store) FindBatchByChecksum(ctx context.Context, checksum string) (*Batch, error) {
	if strings.TrimSpace(checksum) == "" {
		return nil, nil
	}
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+batchColumns+` FROM import_batches WHERE source_sha256 = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		checksum)
	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find batch by checksum: %w", err)
	}
	return &b, nil
}
