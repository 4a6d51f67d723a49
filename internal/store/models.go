package store

import (
	"time"

	"familygarden/internal/gedcom"
)

// Batch records one committed import.
type Batch struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	SourceFile   string    `json:"source_file"`
	SourceSHA256 string    `json:"source_sha256,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Individuals  int       `json:"individuals"`
	Families     int       `json:"families"`
	Duplicates   int       `json:"duplicates"`
	Skipped      int       `json:"skipped"`
}

// Person is a stored member of the tree.
type Person struct {
	ID         string        `json:"id"`
	BatchID    string        `json:"batch_id"`
	GedcomID   string        `json:"gedcom_id,omitempty"`
	FirstNames string        `json:"first_names"`
	LastName   string        `json:"last_name"`
	MaidenName string        `json:"maiden_name,omitempty"`
	Gender     gedcom.Gender `json:"gender"`
	BirthDate  string        `json:"birth_date,omitempty"`
	BirthPlace string        `json:"birth_place,omitempty"`
	DeathDate  string        `json:"death_date,omitempty"`
	DeathPlace string        `json:"death_place,omitempty"`
	Occupation string        `json:"occupation,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// DisplayName joins first names and last name for listings.
func (p Person) DisplayName() string {
	switch {
	case p.FirstNames == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstNames
	default:
		return p.FirstNames + " " + p.LastName
	}
}

// Family is a stored union. HusbandID, WifeID and each child's PersonID hold
// stored person ids when the member is in the tree; the *Ref fields keep the
// GEDCOM pointers from the source file either way.
type Family struct {
	ID            string        `json:"id"`
	BatchID       string        `json:"batch_id"`
	GedcomID      string        `json:"gedcom_id,omitempty"`
	HusbandID     string        `json:"husband_id,omitempty"`
	WifeID        string        `json:"wife_id,omitempty"`
	HusbandRef    string        `json:"husband_ref,omitempty"`
	WifeRef       string        `json:"wife_ref,omitempty"`
	Children      []FamilyChild `json:"children"`
	MarriageDate  string        `json:"marriage_date,omitempty"`
	MarriagePlace string        `json:"marriage_place,omitempty"`
	DivorceDate   string        `json:"divorce_date,omitempty"`
}

// FamilyChild is one child entry in source order.
type FamilyChild struct {
	PersonID string `json:"person_id,omitempty"`
	Ref      string `json:"ref"`
}
