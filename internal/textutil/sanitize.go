package textutil

import (
	"strings"
	"unicode"
)

// SanitizeToken converts a label to a lowercase filesystem-safe token.
// Accents are folded away, ASCII letters and digits are kept, and every run
// of other characters collapses to a single underscore. Returns "unknown" for
// input with nothing usable.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	pendingSep := false
	for _, r := range foldAccents(strings.ToLower(value)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
