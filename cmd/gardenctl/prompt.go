package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"familygarden/internal/duplicates"
)

// promptDecisions asks, for each probable duplicate, whether to create the
// imported individual anyway or skip it. An empty answer or end of input
// keeps the default of creating.
func promptDecisions(in io.Reader, out io.Writer, matches []duplicates.DuplicateMatch) map[string]duplicates.Decision {
	decisions := make(map[string]duplicates.Decision, len(matches))
	scanner := bufio.NewScanner(in)
	for idx, match := range matches {
		fmt.Fprintf(out, "\nProbable duplicate %d/%d (confidence %d%%)\n", idx+1, len(matches), match.Confidence)
		fmt.Fprintf(out, "  imported: %s\n", describeImported(match))
		fmt.Fprintf(out, "  existing: %s\n", describeExisting(match.ExistingPerson))
		if len(match.MatchReasons) > 0 {
			fmt.Fprintf(out, "  reasons:  %s\n", strings.Join(match.MatchReasons, ", "))
		}
		decisions[match.ImportedPerson.ID] = askDecision(scanner, out)
	}
	return decisions
}

func askDecision(scanner *bufio.Scanner, out io.Writer) duplicates.Decision {
	for {
		fmt.Fprint(out, "Create anyway or skip? [c/s] (default c): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return duplicates.DecisionCreate
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "c", "create":
			return duplicates.DecisionCreate
		case "s", "skip":
			return duplicates.DecisionSkip
		default:
			fmt.Fprintln(out, "Please answer c (create) or s (skip).")
		}
	}
}

func describeImported(match duplicates.DuplicateMatch) string {
	ind := match.ImportedPerson
	return describePerson(ind.ID, ind.DisplayName(), ind.BirthDate, ind.BirthPlace)
}

func describeExisting(person duplicates.ExistingPerson) string {
	name := strings.TrimSpace(person.FirstNames + " " + person.LastName)
	return describePerson(shortID(person.ID), name, person.BirthDate, person.BirthPlace)
}

func describePerson(id, name, birthDate, birthPlace string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", valueOrDash(name), id)
	if birthDate != "" || birthPlace != "" {
		b.WriteString(", born")
		if birthDate != "" {
			b.WriteString(" " + birthDate)
		}
		if birthPlace != "" {
			b.WriteString(" in " + birthPlace)
		}
	}
	return b.String()
}
