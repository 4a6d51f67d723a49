// Package duplicates flags imported individuals that probably already exist in
// the family tree.
//
// Each imported individual is scored against every existing person with an
// additive formula over first name, last name, maiden name, birth year, birth
// place and gender, clamped to 0..100. The best pair at or above the threshold
// becomes a DuplicateMatch; individuals with no such pair are returned as
// unique. Every imported individual ends up in exactly one of the two lists.
//
// The weights and the 50-point default threshold were tuned together, so the
// order of additions and the final clamp are part of the contract.
package duplicates
