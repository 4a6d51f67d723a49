package gedcom

import (
	"strings"

	"github.com/cacack/gedcom-go/parser"
)

// Line is one tokenized GEDCOM line.
type Line struct {
	Level   int
	Pointer string
	Tag     string
	Value   string
}

// ParseLine tokenizes a single line. The boolean is false when the line does
// not have the LEVEL [POINTER] TAG [VALUE] shape, when the level is not a
// plain run of digits, or when the tag is not an uppercase GEDCOM tag.
//
// Each call tokenizes with fresh parser state: nesting is the record
// assembler's concern, so a level jump does not drop a line here.
func ParseLine(raw string) (Line, bool) {
	parsed, err := parser.NewParser().ParseLine(raw)
	if err != nil || parsed == nil {
		return Line{}, false
	}
	if !digitsOnly(firstField(raw)) || !validTag(parsed.Tag) {
		return Line{}, false
	}
	return Line{
		Level:   parsed.Level,
		Pointer: parsed.XRef,
		Tag:     parsed.Tag,
		Value:   strings.TrimSpace(lineValue(raw, parsed.XRef, parsed.Tag, parsed.Value)),
	}, true
}

// lineValue returns the text after the tag. The tokenizer locates the value
// by searching for the tag text, which lands inside the pointer when the
// pointer contains it ("0 @INDI1@ INDI"); that case is resolved from the
// fields instead.
func lineValue(raw, xref, tag, value string) string {
	if xref == "" || !strings.Contains(xref, tag) {
		return value
	}
	rest := strings.TrimLeft(strings.TrimRight(raw, "\r\n"), " \t")
	for _, field := range []string{firstField(rest), xref, tag} {
		rest = strings.TrimLeft(strings.TrimPrefix(rest, field), " \t")
	}
	return rest
}

func firstField(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func digitsOnly(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validTag accepts [A-Z_][A-Z0-9_]*.
func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// StripPointer removes the @ delimiters from a cross-reference.
func StripPointer(value string) string {
	return strings.Trim(strings.TrimSpace(value), "@")
}

// splitLines normalizes CRLF and bare CR endings to LF before splitting.
func splitLines(content string) []string {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}
