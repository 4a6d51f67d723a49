package gedcom

// Gender is the normalized sex of an individual.
type Gender string

// Gender values. GenderOther is never produced by the parser but is part of
// the vocabulary shared with stored persons.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// Known reports whether the gender carries information usable for matching.
func (g Gender) Known() bool {
	return g != "" && g != GenderUnknown
}

// ParseGender maps a stored or user supplied value onto the Gender vocabulary.
func ParseGender(value string) Gender {
	switch Gender(value) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(value)
	default:
		return GenderUnknown
	}
}

// ParsedIndividual is one INDI record. Optional fields are empty when the
// source did not provide them or the value could not be normalized.
type ParsedIndividual struct {
	ID         string `json:"id" yaml:"id"`
	FirstName  string `json:"firstName" yaml:"first_name"`
	LastName   string `json:"lastName" yaml:"last_name"`
	MaidenName string `json:"maidenName,omitempty" yaml:"maiden_name,omitempty"`
	Gender     Gender `json:"gender" yaml:"gender"`
	BirthDate  string `json:"birthDate,omitempty" yaml:"birth_date,omitempty"`
	BirthPlace string `json:"birthPlace,omitempty" yaml:"birth_place,omitempty"`
	DeathDate  string `json:"deathDate,omitempty" yaml:"death_date,omitempty"`
	DeathPlace string `json:"deathPlace,omitempty" yaml:"death_place,omitempty"`
	Occupation string `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DisplayName joins first and last name for summaries.
func (p ParsedIndividual) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}

// HasName reports whether at least one name component is present.
func (p ParsedIndividual) HasName() bool {
	return p.FirstName != "" || p.LastName != ""
}

// ParsedFamily is one FAM record. Member references are individual ids with
// the surrounding @ removed; they are not checked against the parsed
// individuals.
type ParsedFamily struct {
	ID            string   `json:"id" yaml:"id"`
	HusbandID     string   `json:"husbandId,omitempty" yaml:"husband_id,omitempty"`
	WifeID        string   `json:"wifeId,omitempty" yaml:"wife_id,omitempty"`
	ChildrenIDs   []string `json:"childrenIds" yaml:"children_ids"`
	MarriageDate  string   `json:"marriageDate,omitempty" yaml:"marriage_date,omitempty"`
	MarriagePlace string   `json:"marriagePlace,omitempty" yaml:"marriage_place,omitempty"`
	DivorceDate   string   `json:"divorceDate,omitempty" yaml:"divorce_date,omitempty"`
}

// ParseResult is the outcome of one Parse call.
type ParseResult struct {
	Individuals []ParsedIndividual `json:"individuals" yaml:"individuals"`
	Families    []ParsedFamily     `json:"families" yaml:"families"`
	Errors      []string           `json:"errors" yaml:"errors"`
	Warnings    []string           `json:"warnings" yaml:"warnings"`
}

// HasErrors reports whether the result carries blocking errors.
func (r *ParseResult) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// IndividualByID returns the individual with the given id.
func (r *ParseResult) IndividualByID(id string) (ParsedIndividual, bool) {
	if r == nil {
		return ParsedIndividual{}, false
	}
	for _, ind := range r.Individuals {
		if ind.ID == id {
			return ind, true
		}
	}
	return ParsedIndividual{}, false
}

// Stats summarizes a result for reporting.
type Stats struct {
	Individuals int `json:"individuals"`
	Families    int `json:"families"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	WithBirth   int `json:"with_birth_date"`
	WithDeath   int `json:"with_death_date"`
}

// Stats counts records and issues in the result.
func (r *ParseResult) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	stats := Stats{
		Individuals: len(r.Individuals),
		Families:    len(r.Families),
		Errors:      len(r.Errors),
		Warnings:    len(r.Warnings),
	}
	for _, ind := range r.Individuals {
		if ind.BirthDate != "" {
			stats.WithBirth++
		}
		if ind.DeathDate != "" {
			stats.WithDeath++
		}
	}
	return stats
}
