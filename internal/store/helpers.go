package store

import (
	"database/sql"
	"errors"
	"time"

	"familygarden/internal/gedcom"
)

const personColumns = "id, batch_id, gedcom_id, first_names, last_name, maiden_name, gender, birth_date, birth_place, death_date, death_place, occupation, notes, created_at"

const batchColumns = "id, label, source_file, source_sha256, created_at, individuals, families, duplicates, skipped"

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(row scanner) (Person, error) {
	var (
		p          Person
		gedcomID   sql.NullString
		firstNames sql.NullString
		lastName   sql.NullString
		maidenName sql.NullString
		gender     string
		birthDate  sql.NullString
		birthPlace sql.NullString
		deathDate  sql.NullString
		deathPlace sql.NullString
		occupation sql.NullString
		notes      sql.NullString
		createdRaw string
	)
	if err := row.Scan(
		&p.ID,
		&p.BatchID,
		&gedcomID,
		&firstNames,
		&lastName,
		&maidenName,
		&gender,
		&birthDate,
		&birthPlace,
		&deathDate,
		&deathPlace,
		&occupation,
		&notes,
		&createdRaw,
	); err != nil {
		return Person{}, err
	}
	p.GedcomID = gedcomID.String
	p.FirstNames = firstNames.String
	p.LastName = lastName.String
	p.MaidenName = maidenName.String
	p.Gender = gedcom.ParseGender(gender)
	p.BirthDate = birthDate.String
	p.BirthPlace = birthPlace.String
	p.DeathDate = deathDate.String
	p.DeathPlace = deathPlace.String
	p.Occupation = occupation.String
	p.Notes = notes.String
	if created, err := parseTimeString(createdRaw); err == nil {
		p.CreatedAt = created
	}
	return p, nil
}

func scanBatch(row scanner) (Batch, error) {
	var (
		b          Batch
		checksum   sql.NullString
		createdRaw string
	)
	if err := row.Scan(
		&b.ID,
		&b.Label,
		&b.SourceFile,
		&checksum,
		&createdRaw,
		&b.Individuals,
		&b.Families,
		&b.Duplicates,
		&b.Skipped,
	); err != nil {
		return Batch{}, err
	}
	b.SourceSHA256 = checksum.String
	if created, err := parseTimeString(createdRaw); err == nil {
		b.CreatedAt = created
	}
	return b, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// storedTimeLayout is fixed width so timestamps sort as text.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(value time.Time) string {
	if value.IsZero() {
		value = time.Now()
	}
	return value.UTC().Format(storedTimeLayout)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
