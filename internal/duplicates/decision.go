package duplicates

import (
	"fmt"
	"strings"
)

// Decision is the reviewer's choice for a flagged duplicate.
type Decision string

// Decision values. DecisionMerge is reserved: it is accepted by
// ParseDecision but no import flow implements it.
const (
	DecisionCreate Decision = "create"
	DecisionSkip   Decision = "skip"
	DecisionMerge  Decision = "merge"
)

// ParseDecision validates a decision string.
func ParseDecision(value string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(value))); d {
	case DecisionCreate, DecisionSkip, DecisionMerge:
		return d, nil
	default:
		return "", fmt.Errorf("unknown decision %q (expected create or skip)", value)
	}
}
