package importer

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackLabel = "Imported Tree"

// deriveLabel turns a file name such as "famille_dupont-1900.ged" into a
// batch label like "Famille Dupont 1900".
func deriveLabel(sourcePath string) string {
	if sourcePath == "" {
		return fallbackLabel
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	label := strings.TrimSpace(cleaned.String())
	if label == "" {
		return fallbackLabel
	}
	return cases.Title(language.Und).String(label)
}
