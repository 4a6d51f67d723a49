package importer

import (
	"fmt"
	"sort"

	"familygarden/internal/duplicates"
	"familygarden/internal/gedcom"
)

// Plan is the resolved outcome of applying decisions to a preview.
type Plan struct {
	// Create lists the individuals to insert, in file order.
	Create []gedcom.ParsedIndividual `json:"create"`
	// Skip lists the duplicates the caller chose not to import.
	Skip []duplicates.DuplicateMatch `json:"skip"`
	// DuplicatesCreated counts probable duplicates imported anyway.
	DuplicatesCreated int `json:"duplicates_created"`
}

// Resolve applies decisions, keyed by imported individual id, to the
// preview's probable duplicates. Duplicates without a decision are created.
// Unique individuals are always created.
func (p *Preview) Resolve(decisions map[string]duplicates.Decision) (*Plan, error) {
	matches := make(map[string]duplicates.DuplicateMatch, len(p.Detection.Duplicates))
	for _, match := range p.Detection.Duplicates {
		matches[match.ImportedPerson.ID] = match
	}

	ids := make([]string, 0, len(decisions))
	for id := range decisions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	skip := make(map[string]bool)
	for _, id := range ids {
		if _, ok := matches[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownIndividual, id)
		}
		switch decisions[id] {
		case duplicates.DecisionCreate:
		case duplicates.DecisionSkip:
			skip[id] = true
		default:
			return nil, fmt.Errorf("%w: %q for %s", ErrUnsupportedDecision, decisions[id], id)
		}
	}

	plan := &Plan{
		Create: []gedcom.ParsedIndividual{},
		Skip:   []duplicates.DuplicateMatch{},
	}
	// Detection partitions the parsed individuals in file order, so walking
	// both lists alongside the parse keeps that order without relying on ids
	// being unique within the file.
	dups, uniques := p.Detection.Duplicates, p.Detection.UniquePersons
	for _, ind := range p.Parse.Individuals {
		switch {
		case len(dups) > 0 && dups[0].ImportedPerson == ind:
			match := dups[0]
			dups = dups[1:]
			if skip[match.ImportedPerson.ID] {
				plan.Skip = append(plan.Skip, match)
				continue
			}
			plan.DuplicatesCreated++
			plan.Create = append(plan.Create, ind)
		case len(uniques) > 0 && uniques[0] == ind:
			uniques = uniques[1:]
			plan.Create = append(plan.Create, ind)
		}
	}
	plan.Create = append(plan.Create, uniques...)
	for _, match := range dups {
		if skip[match.ImportedPerson.ID] {
			plan.Skip = append(plan.Skip, match)
			continue
		}
		plan.DuplicatesCreated++
		plan.Create = append(plan.Create, match.ImportedPerson)
	}
	return plan, nil
}

// SkipAll returns decisions skipping every probable duplicate.
func (p *Preview) SkipAll() map[string]duplicates.Decision {
	decisions := make(map[string]duplicates.Decision, len(p.Detection.Duplicates))
	for _, match := range p.Detection.Duplicates {
		decisions[match.ImportedPerson.ID] = duplicates.DecisionSkip
	}
	return decisions
}
