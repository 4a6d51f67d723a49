package gedcom_test

import (
	"reflect"
	"strings"
	"testing"

	"familygarden/internal/gedcom"
)

const minimalFile = "0 HEAD\n0 @I1@ INDI\n1 NAME John /Doe/\n1 SEX M\n0 TRLR\n"

func TestParseMinimalFile(t *testing.T) {
	result := gedcom.Parse(minimalFile)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if len(result.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(result.Individuals))
	}
	got := result.Individuals[0]
	want := gedcom.ParsedIndividual{ID: "I1", FirstName: "John", LastName: "Doe", Gender: gedcom.GenderMale}
	if got != want {
		t.Fatalf("unexpected individual:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseHeaderOnlyReportsError(t *testing.T) {
	result := gedcom.Parse("0 HEAD\n1 SOUR test\n0 TRLR\n")
	if len(result.Individuals) != 0 {
		t.Fatalf("expected no individuals, got %d", len(result.Individuals))
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a file without individuals")
	}
	if result.Errors[0] != gedcom.ErrNoIndividuals {
		t.Fatalf("unexpected error text %q", result.Errors[0])
	}
	if !result.HasErrors() {
		t.Fatal("HasErrors should report true")
	}
}

func TestParseFullIndividual(t *testing.T) {
	content := strings.Join([]string{
		"0 HEAD",
		"0 @I7@ INDI",
		"1 NAME Marie /Curie/ (née Skłodowska)",
		"1 SEX F",
		"1 BIRT",
		"2 DATE 7 NOV 1867",
		"2 PLAC Warsaw, Poland",
		"1 DEAT",
		"2 DATE ABT JUL 1934",
		"2 PLAC Passy, France",
		"1 OCCU",
		"2 TYPE Physicist",
		"1 NOTE Two Nobel prizes",
		"0 TRLR",
	}, "\n")

	result := gedcom.Parse(content)
	if len(result.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(result.Individuals))
	}
	want := gedcom.ParsedIndividual{
		ID:         "I7",
		FirstName:  "Marie",
		LastName:   "Curie",
		MaidenName: "Skłodowska",
		Gender:     gedcom.GenderFemale,
		BirthDate:  "1867-11-07",
		BirthPlace: "Warsaw, Poland",
		DeathDate:  "1934-07-01",
		DeathPlace: "Passy, France",
		Occupation: "Physicist",
		Notes:      "Two Nobel prizes",
	}
	if got := result.Individuals[0]; got != want {
		t.Fatalf("unexpected individual:\n got %#v\nwant %#v", got, want)
	}
}

func TestParseOccupationFallback(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "type wins",
			lines: []string{"1 OCCU", "2 TYPE Baker"},
			want:  "Baker",
		},
		{
			name:  "first sub-tag accepted when unset",
			lines: []string{"1 OCCU", "2 PLAC Miller", "2 NOTE ignored"},
			want:  "Miller",
		},
		{
			name:  "type overrides fallback",
			lines: []string{"1 OCCU", "2 PLAC Miller", "2 TYPE Smith"},
			want:  "Smith",
		},
		{
			name:  "level one value is context only",
			lines: []string{"1 OCCU Farmer"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "0 @I1@ INDI\n1 NAME A /B/\n" + strings.Join(tt.lines, "\n")
			result := gedcom.Parse(content)
			if len(result.Individuals) != 1 {
				t.Fatalf("expected 1 individual, got %d", len(result.Individuals))
			}
			if got := result.Individuals[0].Occupation; got != tt.want {
				t.Fatalf("occupation = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFamilyChildrenOrder(t *testing.T) {
	content := strings.Join([]string{
		"0 @I1@ INDI",
		"1 NAME Pierre /Curie/",
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 CHIL @I5@",
		"1 CHIL @I3@",
		"1 MARR",
		"2 DATE 26 JUL 1895",
		"2 PLAC Sceaux",
		"1 CHIL @I4@",
		"1 DIV",
		"2 DATE 1900",
	}, "\n")

	result := gedcom.Parse(content)
	if len(result.Families) != 1 {
		t.Fatalf("expected 1 family, got %d", len(result.Families))
	}
	fam := result.Families[0]
	if fam.ID != "F1" || fam.HusbandID != "I1" || fam.WifeID != "I2" {
		t.Fatalf("unexpected family members: %#v", fam)
	}
	if want := []string{"I5", "I3", "I4"}; !reflect.DeepEqual(fam.ChildrenIDs, want) {
		t.Fatalf("children = %v, want %v", fam.ChildrenIDs, want)
	}
	if fam.MarriageDate != "1895-07-26" || fam.MarriagePlace != "Sceaux" {
		t.Fatalf("unexpected marriage fields: %q %q", fam.MarriageDate, fam.MarriagePlace)
	}
	if fam.DivorceDate != "1900-01-01" {
		t.Fatalf("unexpected divorce date %q", fam.DivorceDate)
	}
}

func TestParseSkipsMalformedLinesAndRecordsWithoutPointer(t *testing.T) {
	content := strings.Join([]string{
		"0 HEAD",
		"garbage line",
		"",
		"   ",
		"X NAME nope",
		"0 INDI",
		"1 NAME No /Pointer/",
		"0 @I2@ INDI",
		"1 NAME Kept /Person/",
		"1 name lowercase /Ignored/",
		"0 @S1@ SOUR",
		"1 NAME Not /A Person/",
	}, "\n")

	result := gedcom.Parse(content)
	if len(result.Individuals) != 1 {
		t.Fatalf("expected 1 individual, got %d: %#v", len(result.Individuals), result.Individuals)
	}
	if got := result.Individuals[0]; got.ID != "I2" || got.FirstName != "Kept" || got.LastName != "Person" {
		t.Fatalf("unexpected individual %#v", got)
	}
	if len(result.Errors) != 0 || len(result.Warnings) != 0 {
		t.Fatalf("malformed lines must not surface: errors=%v warnings=%v", result.Errors, result.Warnings)
	}
}

func TestParseLineEndings(t *testing.T) {
	for name, sep := range map[string]string{"crlf": "\r\n", "cr": "\r", "lf": "\n"} {
		t.Run(name, func(t *testing.T) {
			content := strings.ReplaceAll(minimalFile, "\n", sep)
			result := gedcom.Parse(content)
			if len(result.Individuals) != 1 {
				t.Fatalf("expected 1 individual, got %d", len(result.Individuals))
			}
			if result.Individuals[0].LastName != "Doe" {
				t.Fatalf("unexpected last name %q", result.Individuals[0].LastName)
			}
		})
	}
}

func TestParseWarnsForUnnamedIndividuals(t *testing.T) {
	content := "0 @I1@ INDI\n1 SEX F\n0 @I2@ INDI\n1 NAME Ann /Lee/\n0 @I3@ INDI\n1 NAME //\n"
	result := gedcom.Parse(content)

	if len(result.Individuals) != 3 {
		t.Fatalf("expected 3 individuals, got %d", len(result.Individuals))
	}
	want := []string{"Individual I1 has no name", "Individual I3 has no name"}
	if !reflect.DeepEqual(result.Warnings, want) {
		t.Fatalf("warnings = %v, want %v", result.Warnings, want)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors %v", result.Errors)
	}
}

func TestParseUnrecognizedDateLeftUnset(t *testing.T) {
	content := "0 @I1@ INDI\n1 NAME A /B/\n1 BIRT\n2 DATE sometime in spring\n"
	result := gedcom.Parse(content)
	if got := result.Individuals[0].BirthDate; got != "" {
		t.Fatalf("expected unset birth date, got %q", got)
	}
	if len(result.Warnings) != 0 || len(result.Errors) != 0 {
		t.Fatal("unrecognized dates must not produce errors or warnings")
	}
}

func TestParseDetailOutsideContextIgnored(t *testing.T) {
	content := "0 @I1@ INDI\n1 NAME A /B/\n1 RESI\n2 PLAC Paris\n2 DATE 1900\n"
	result := gedcom.Parse(content)
	got := result.Individuals[0]
	if got.BirthPlace != "" || got.DeathPlace != "" || got.BirthDate != "" {
		t.Fatalf("RESI details leaked into individual: %#v", got)
	}
}

func TestIsValidGedcomFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"header", "0 HEAD\n1 CHAR UTF-8\n", true},
		{"no header individual", "0 @I1@ INDI\n1 NAME A /B/\n", true},
		{"no header family", "0 @F1@ FAM\n", true},
		{"empty", "", false},
		{"plain text", "hello\nworld\n", false},
		{"head at level one", "1 HEAD\n", false},
		{"header beyond scan window", strings.Repeat("junk\n", 10) + "0 HEAD\n", false},
		{"header on tenth line", strings.Repeat("junk\n", 9) + "0 HEAD\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gedcom.IsValidGedcomFile(tt.content); got != tt.want {
				t.Fatalf("IsValidGedcomFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseResultStats(t *testing.T) {
	content := "0 @I1@ INDI\n1 NAME A /B/\n1 BIRT\n2 DATE 1900\n0 @I2@ INDI\n1 DEAT\n2 DATE 1950\n0 @F1@ FAM\n"
	stats := gedcom.Parse(content).Stats()
	want := gedcom.Stats{Individuals: 2, Families: 1, Warnings: 1, WithBirth: 1, WithDeath: 1}
	if stats != want {
		t.Fatalf("Stats() = %#v, want %#v", stats, want)
	}
}
