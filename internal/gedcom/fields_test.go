package gedcom

import "testing"

func TestParseName(t *testing.T) {
	tests := []struct {
		value string
		want  Name
	}{
		{"Jean /Martin/", Name{FirstName: "Jean", LastName: "Martin"}},
		{"Jean /Martin/ (née Dupont)", Name{FirstName: "Jean", LastName: "Martin", MaidenName: "Dupont"}},
		{"Jeanne /Martin/ (NEE Durand)", Name{FirstName: "Jeanne", LastName: "Martin", MaidenName: "Durand"}},
		{"Ada /Lovelace/ (born Byron)", Name{FirstName: "Ada", LastName: "Lovelace", MaidenName: "Byron"}},
		{"SoloName", Name{FirstName: "SoloName"}},
		{"  Anne Marie  ", Name{FirstName: "Anne Marie"}},
		{"/Smith/", Name{LastName: "Smith"}},
		{" Jean Paul / de la Tour / Jr", Name{FirstName: "Jean Paul", LastName: "de la Tour"}},
		{"", Name{}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ParseName(tt.value); got != tt.want {
				t.Fatalf("ParseName(%q) = %#v, want %#v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1 JAN 1990", "1990-01-01"},
		{"15 Aug 1769", "1769-08-15"},
		{"JAN 1990", "1990-01-01"},
		{"dec 1899", "1899-12-01"},
		{"1990", "1990-01-01"},
		{"ABT 1925", "1925-01-01"},
		{"abt 3 MAR 1925", "1925-03-03"},
		{"ESTIMATED 1800", "1800-01-01"},
		{"BEF FEB 1700", "1700-02-01"},
		{"AFTER 1650", "1650-01-01"},
		{"CAL 12 OCT 1492", "1492-10-12"},
		{"31 FEB 1900", "1900-02-31"},
		{"99 JAN 1990", "1990-01-99"},
		{"not a date", ""},
		{"12 XYZ 1900", ""},
		{"BET 1900 AND 1910", ""},
		{"", ""},
		{"ABT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := NormalizeDate(tt.value); got != tt.want {
				t.Fatalf("NormalizeDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		raw  string
		want Line
		ok   bool
	}{
		{"0 HEAD", Line{Level: 0, Tag: "HEAD"}, true},
		{"0 @I1@ INDI", Line{Level: 0, Pointer: "@I1@", Tag: "INDI"}, true},
		{"1 NAME John /Doe/  ", Line{Level: 1, Tag: "NAME", Value: "John /Doe/"}, true},
		{"2 _CUSTOM value", Line{Level: 2, Tag: "_CUSTOM", Value: "value"}, true},
		{"1 HUSB @I1@\r\n", Line{Level: 1, Tag: "HUSB", Value: "@I1@"}, true},
		{"", Line{}, false},
		{"HEAD", Line{}, false},
		{"-1 HEAD", Line{}, false},
		{"1 name lower", Line{}, false},
		{"+1 NAME John", Line{}, false},
		{"1 2ND value", Line{}, false},
		{"0 @INDI1@ INDI trailing", Line{Level: 0, Pointer: "@INDI1@", Tag: "INDI", Value: "trailing"}, true},
		{"\t1 NAME\tJohn /Doe/", Line{Level: 1, Tag: "NAME", Value: "John /Doe/"}, true},
		{"3 DATE 1900", Line{Level: 3, Tag: "DATE", Value: "1900"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLine(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("ParseLine(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripPointer(t *testing.T) {
	if got := StripPointer(" @F12@ "); got != "F12" {
		t.Fatalf("StripPointer = %q", got)
	}
	if got := StripPointer("I3"); got != "I3" {
		t.Fatalf("StripPointer without delimiters = %q", got)
	}
}
