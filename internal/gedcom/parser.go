package gedcom

import "fmt"

// validityScanLines bounds how far IsValidGedcomFile looks for a record.
const validityScanLines = 10

// ErrNoIndividuals is the error text recorded when a file yields no INDI records.
const ErrNoIndividuals = "No individuals found in GEDCOM file"

type recordKind int

const (
	recordNone recordKind = iota
	recordIndividual
	recordFamily
)

// assembler holds the rolling state of one parse pass. context is the
// level-1 tag that scopes the level-2 lines following it.
type assembler struct {
	kind       recordKind
	individual ParsedIndividual
	family     ParsedFamily
	context    string
	result     *ParseResult
}

// Parse converts GEDCOM text into individuals and families. It never fails:
// unparseable lines are skipped and problems are reported through the
// Errors and Warnings of the returned result.
func Parse(content string) *ParseResult {
	a := &assembler{
		result: &ParseResult{
			Individuals: []ParsedIndividual{},
			Families:    []ParsedFamily{},
			Errors:      []string{},
			Warnings:    []string{},
		},
	}
	for _, raw := range splitLines(content) {
		line, ok := ParseLine(raw)
		if !ok {
			continue
		}
		a.step(line)
	}
	a.commit()
	a.validate()
	return a.result
}

// IsValidGedcomFile reports whether the first lines contain a HEAD, INDI or
// FAM record. Files missing a header are accepted when records start early.
func IsValidGedcomFile(content string) bool {
	lines := splitLines(content)
	if len(lines) > validityScanLines {
		lines = lines[:validityScanLines]
	}
	for _, raw := range lines {
		line, ok := ParseLine(raw)
		if !ok || line.Level != 0 {
			continue
		}
		switch line.Tag {
		case "HEAD", "INDI", "FAM":
			return true
		}
	}
	return false
}

func (a *assembler) step(line Line) {
	switch line.Level {
	case 0:
		a.openRecord(line)
	case 1:
		a.context = line.Tag
		switch a.kind {
		case recordIndividual:
			a.applyIndividualField(line)
		case recordFamily:
			a.applyFamilyField(line)
		}
	case 2:
		switch a.kind {
		case recordIndividual:
			a.applyIndividualDetail(line)
		case recordFamily:
			a.applyFamilyDetail(line)
		}
	}
}

func (a *assembler) openRecord(line Line) {
	a.commit()
	a.context = ""

	id := StripPointer(line.Pointer)
	switch {
	case line.Tag == "INDI" && line.Pointer != "":
		a.kind = recordIndividual
		a.individual = ParsedIndividual{ID: id, Gender: GenderUnknown}
	case line.Tag == "FAM" && line.Pointer != "":
		a.kind = recordFamily
		a.family = ParsedFamily{ID: id, ChildrenIDs: []string{}}
	default:
		a.kind = recordNone
	}
}

// commit appends the open record, if any, and closes it.
func (a *assembler) commit() {
	switch a.kind {
	case recordIndividual:
		if a.individual.ID != "" {
			a.result.Individuals = append(a.result.Individuals, a.individual)
		}
	case recordFamily:
		if a.family.ID != "" {
			a.result.Families = append(a.result.Families, a.family)
		}
	}
	a.kind = recordNone
	a.individual = ParsedIndividual{}
	a.family = ParsedFamily{}
}

func (a *assembler) applyIndividualField(line Line) {
	switch line.Tag {
	case "NAME":
		name := ParseName(line.Value)
		a.individual.FirstName = name.FirstName
		a.individual.LastName = name.LastName
		a.individual.MaidenName = name.MaidenName
	case "SEX":
		a.individual.Gender = sexToGender(line.Value)
	case "NOTE":
		a.individual.Notes = line.Value
	}
}

func (a *assembler) applyIndividualDetail(line Line) {
	ind := &a.individual
	switch a.context {
	case "BIRT":
		switch line.Tag {
		case "DATE":
			ind.BirthDate = NormalizeDate(line.Value)
		case "PLAC":
			ind.BirthPlace = line.Value
		}
	case "DEAT":
		switch line.Tag {
		case "DATE":
			ind.DeathDate = NormalizeDate(line.Value)
		case "PLAC":
			ind.DeathPlace = line.Value
		}
	case "OCCU":
		if line.Tag == "TYPE" || ind.Occupation == "" {
			ind.Occupation = line.Value
		}
	}
}

func (a *assembler) applyFamilyField(line Line) {
	fam := &a.family
	switch line.Tag {
	case "HUSB":
		fam.HusbandID = StripPointer(line.Value)
	case "WIFE":
		fam.WifeID = StripPointer(line.Value)
	case "CHIL":
		fam.ChildrenIDs = append(fam.ChildrenIDs, StripPointer(line.Value))
	}
}

func (a *assembler) applyFamilyDetail(line Line) {
	fam := &a.family
	switch a.context {
	case "MARR":
		switch line.Tag {
		case "DATE":
			fam.MarriageDate = NormalizeDate(line.Value)
		case "PLAC":
			fam.MarriagePlace = line.Value
		}
	case "DIV":
		if line.Tag == "DATE" {
			fam.DivorceDate = NormalizeDate(line.Value)
		}
	}
}

func (a *assembler) validate() {
	if len(a.result.Individuals) == 0 {
		a.result.Errors = append(a.result.Errors, ErrNoIndividuals)
	}
	for _, ind := range a.result.Individuals {
		if !ind.HasName() {
			a.result.Warnings = append(a.result.Warnings, fmt.Sprintf("Individual %s has no name", ind.ID))
		}
	}
}

func sexToGender(value string) Gender {
	switch value {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnknown
	}
}
