package gedcom

import (
	"regexp"
	"strings"
)

var (
	surnamePattern = regexp.MustCompile(`^([^/]*)/([^/]*)/`)
	maidenPattern  = regexp.MustCompile(`(?i)\((?:née|nee|born)\s+([^)]+)\)`)
)

// Name is the decomposed form of a GEDCOM NAME value.
type Name struct {
	FirstName  string
	LastName   string
	MaidenName string
}

// ParseName splits "Given /Surname/" into its parts. A parenthetical such as
// "(née Dupont)" anywhere in the value is captured as the maiden name. Values
// without a slash-delimited surname become the first name as a whole.
func ParseName(value string) Name {
	var name Name
	if m := surnamePattern.FindStringSubmatch(value); m != nil {
		name.FirstName = strings.TrimSpace(m[1])
		name.LastName = strings.TrimSpace(m[2])
	} else {
		name.FirstName = strings.TrimSpace(value)
	}
	if m := maidenPattern.FindStringSubmatch(value); m != nil {
		name.MaidenName = strings.TrimSpace(m[1])
	}
	return name
}
