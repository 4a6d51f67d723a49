package textutil

import "strings"

const (
	// ContainmentSimilarity is the fixed score for one normalized string
	// containing the other.
	ContainmentSimilarity = 0.8

	// maxEditDistanceRunes caps the strings compared by edit distance.
	// Longer strings with no exact or containment match score 0.
	maxEditDistanceRunes = 20
)

// Similarity scores two strings between 0 and 1 after normalization.
// Empty input scores 0, equal strings 1, containment ContainmentSimilarity,
// and short strings fall back to 1 - distance/maxLen.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return ContainmentSimilarity
	}

	ra := []rune(na)
	rb := []rune(nb)
	if len(ra) >= maxEditDistanceRunes || len(rb) >= maxEditDistanceRunes {
		return 0
	}
	longest := max(len(ra), len(rb))
	score := 1 - float64(levenshteinRunes(ra, rb))/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}

// Levenshtein returns the edit distance between two strings, counting
// insertions, deletions, and substitutions as 1 each. Runes, not bytes, are
// compared.
func Levenshtein(a, b string) int {
	return levenshteinRunes([]rune(a), []rune(b))
}

func levenshteinRunes(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
