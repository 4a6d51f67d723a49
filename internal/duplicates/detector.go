package duplicates

import (
	"regexp"
	"strconv"

	"familygarden/internal/gedcom"
	"familygarden/internal/textutil"
)

// DefaultThreshold is the minimum score, inclusive, for a pair to count as a
// duplicate.
const DefaultThreshold = 50

// Match reasons, attached to a DuplicateMatch in scoring order.
const (
	ReasonFirstNameIdentical = "Prénom identique"
	ReasonFirstNameSimilar   = "Prénom similaire"
	ReasonLastNameIdentical  = "Nom identique"
	ReasonLastNameSimilar    = "Nom similaire"
	ReasonMaidenName         = "Nom de jeune fille correspondant"
	ReasonSameBirthYear      = "Même année de naissance"
	ReasonCloseBirthYear     = "Année de naissance proche"
	ReasonBirthPlace         = "Lieu de naissance similaire"
	ReasonSameGender         = "Même genre"
)

const (
	identicalSimilarity = 0.9
	similarSimilarity   = 0.7

	nameIdenticalPoints  = 30
	nameSimilarPoints    = 20
	maidenNamePoints     = 15
	sameYearPoints       = 20
	closeYearPoints      = 10
	closeYearWindow      = 2
	birthPlacePoints     = 10
	sameGenderPoints     = 10
	genderMismatchPoints = -30
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExistingPerson is a person already stored in the tree. Only the fields used
// for matching are carried.
type ExistingPerson struct {
	ID         string        `json:"id"`
	FirstNames string        `json:"first_names"`
	LastName   string        `json:"last_name"`
	MaidenName string        `json:"maiden_name,omitempty"`
	Gender     gedcom.Gender `json:"gender,omitempty"`
	BirthDate  string        `json:"birth_date,omitempty"`
	BirthPlace string        `json:"birth_place,omitempty"`
}

// DuplicateMatch pairs an imported individual with its best existing match.
type DuplicateMatch struct {
	ImportedPerson gedcom.ParsedIndividual `json:"importedPerson"`
	ExistingPerson ExistingPerson          `json:"existingPerson"`
	Confidence     int                     `json:"confidence"`
	MatchReasons   []string                `json:"matchReasons"`
}

// Result partitions imported individuals into probable duplicates and
// unique persons.
type Result struct {
	Duplicates    []DuplicateMatch          `json:"duplicates"`
	UniquePersons []gedcom.ParsedIndividual `json:"uniquePersons"`
}

// DetectDuplicates finds, for each imported individual, the highest scoring
// existing person with a score of at least threshold. Ties keep the first
// existing person encountered.
func DetectDuplicates(imported []gedcom.ParsedIndividual, existing []ExistingPerson, threshold int) Result {
	result := Result{
		Duplicates:    []DuplicateMatch{},
		UniquePersons: []gedcom.ParsedIndividual{},
	}
	for _, person := range imported {
		var (
			best  DuplicateMatch
			found bool
		)
		for _, candidate := range existing {
			score, reasons := CalculateMatchScore(person, candidate)
			if score < threshold {
				continue
			}
			if !found || score > best.Confidence {
				best = DuplicateMatch{
					ImportedPerson: person,
					ExistingPerson: candidate,
					Confidence:     score,
					MatchReasons:   reasons,
				}
				found = true
			}
		}
		if found {
			result.Duplicates = append(result.Duplicates, best)
		} else {
			result.UniquePersons = append(result.UniquePersons, person)
		}
	}
	return result
}

// CalculateMatchScore scores an imported individual against an existing
// person. Points are added in a fixed order and the total is clamped to
// 0..100 only at the end, so a gender mismatch can cancel other evidence.
func CalculateMatchScore(imported gedcom.ParsedIndividual, existing ExistingPerson) (int, []string) {
	score := 0
	reasons := []string{}

	firstSim := textutil.Similarity(imported.FirstName, existing.FirstNames)
	switch {
	case firstSim >= identicalSimilarity:
		score += nameIdenticalPoints
		reasons = append(reasons, ReasonFirstNameIdentical)
	case firstSim >= similarSimilarity:
		score += nameSimilarPoints
		reasons = append(reasons, ReasonFirstNameSimilar)
	}

	lastSim := textutil.Similarity(imported.LastName, existing.LastName)
	switch {
	case lastSim >= identicalSimilarity:
		score += nameIdenticalPoints
		reasons = append(reasons, ReasonLastNameIdentical)
	case lastSim >= similarSimilarity:
		score += nameSimilarPoints
		reasons = append(reasons, ReasonLastNameSimilar)
	}

	if existing.MaidenName != "" && textutil.Similarity(imported.LastName, existing.MaidenName) >= identicalSimilarity {
		score += maidenNamePoints
		reasons = append(reasons, ReasonMaidenName)
	}

	importedYear, okImported := BirthYear(imported.BirthDate)
	existingYear, okExisting := BirthYear(existing.BirthDate)
	if okImported && okExisting {
		diff := importedYear - existingYear
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			score += sameYearPoints
			reasons = append(reasons, ReasonSameBirthYear)
		case diff <= closeYearWindow:
			score += closeYearPoints
			reasons = append(reasons, ReasonCloseBirthYear)
		}
	}

	if textutil.Similarity(imported.BirthPlace, existing.BirthPlace) >= similarSimilarity {
		score += birthPlacePoints
		reasons = append(reasons, ReasonBirthPlace)
	}

	if imported.Gender.Known() && existing.Gender.Known() {
		if imported.Gender == existing.Gender {
			score += sameGenderPoints
			reasons = append(reasons, ReasonSameGender)
		} else {
			score += genderMismatchPoints
		}
	}

	return min(max(score, 0), 100), reasons
}

// BirthYear extracts the first run of four digits from a date string.
func BirthYear(date string) (int, bool) {
	match := yearPattern.FindString(date)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}
