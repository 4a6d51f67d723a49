package store

import (
	"context"
	"database/sql"
	"fmt"

	"familygarden/internal/duplicates"
)

// ListExistingPersons returns every stored person in the shape the duplicate
// detector compares against, oldest first.
func (s *Store) ListExistingPersons(ctx context.Context) ([]duplicates.ExistingPerson, error) {
	persons, err := s.ListPersons(ctx, "")
	if err != nil {
		return nil, err
	}
	existing := make([]duplicates.ExistingPerson, 0, len(persons))
	for _, p := range persons {
		existing = append(existing, duplicates.ExistingPerson{
			ID:         p.ID,
			FirstNames: p.FirstNames,
			LastName:   p.LastName,
			MaidenName: p.MaidenName,
			Gender:     p.Gender,
			BirthDate:  p.BirthDate,
			BirthPlace: p.BirthPlace,
		})
	}
	return existing, nil
}

// ListPersons returns stored persons in insertion order. An empty batchID
// lists the whole tree.
func (s *Store) ListPersons(ctx context.Context, batchID string) ([]Person, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + personColumns + ` FROM persons`
	var args []any
	if batchID != "" {
		query += ` WHERE batch_id = ?`
		args = append(args, batchID)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons := []Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return persons, nil
}

// CountPersons returns the number of stored persons.
func (s *Store) CountPersons(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ensureContext(ctx), `SELECT COUNT(1) FROM persons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return count, nil
}

// ListFamilies returns the families recorded by a batch with their children
// in source order. An empty batchID lists every family.
func (s *Store) ListFamilies(ctx context.Context, batchID string) ([]Family, error) {
	ctx = ensureContext(ctx)
	query := `SELECT id, batch_id, gedcom_id, husband_id, wife_id, husband_ref, wife_ref,
        marriage_date, marriage_place, divorce_date FROM families`
	var args []any
	if batchID != "" {
		query += ` WHERE batch_id = ?`
		args = append(args, batchID)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	families := []Family{}
	index := map[string]int{}
	for rows.Next() {
		var (
			f      Family
			fields [8]sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.BatchID, &fields[0], &fields[1], &fields[2], &fields[3], &fields[4], &fields[5], &fields[6], &fields[7]); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan family: %w", err)
		}
		f.GedcomID = fields[0].String
		f.HusbandID = fields[1].String
		f.WifeID = fields[2].String
		f.HusbandRef = fields[3].String
		f.WifeRef = fields[4].String
		f.MarriageDate = fields[5].String
		f.MarriagePlace = fields[6].String
		f.DivorceDate = fields[7].String
		f.Children = []FamilyChild{}
		index[f.ID] = len(families)
		families = append(families, f)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate families: %w", err)
	}
	rows.Close()

	childRows, err := s.db.QueryContext(ctx,
		`SELECT family_id, person_id, child_ref FROM family_children ORDER BY family_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list family children: %w", err)
	}
	defer childRows.Close()
	for childRows.Next() {
		var (
			familyID string
			personID sql.NullString
			child    FamilyChild
		)
		if err := childRows.Scan(&familyID, &personID, &child.Ref); err != nil {
			return nil, fmt.Errorf("scan family child: %w", err)
		}
		pos, ok := index[familyID]
		if !ok {
			continue
		}
		child.PersonID = personID.String
		families[pos].Children = append(families[pos].Children, child)
	}
	if err := childRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate family children: %w", err)
	}
	return families, nil
}
