package textutil

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Martin", "martin"},
		{"Élodie-Anne O'Brien", "elodieanneobrien"},
		{"François", "francois"},
		{"Skłodowska", "skłodowska"},
		{"  Saint-Étienne, 42 ", "saintetienne42"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"dupont", "dupond", 1},
		{"ééé", "eee", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "martin", "martin", 1},
		{"identical after normalization", "Hélène", "helene", 1},
		{"containment", "martin", "martinez", 0.8},
		{"containment reversed", "martinez", "martin", 0.8},
		{"empty left", "", "anything", 0},
		{"empty right", "anything", "", 0},
		{"punctuation only", "--", "martin", 0},
		{"one substitution", "dupont", "dupond", 1 - 1.0/6},
		{"completely different", "abc", "xyz", 0},
		{"long strings skip edit distance", "abcdefghijklmnopqrstu", "abcdefghijklmnopqrstv", 0},
		{"nineteen runes use edit distance", "abcdefghijklmnopqrs", "abcdefghijklmnopqrz", 1 - 1.0/19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{{"Jean", "Jeanne"}, {"Durand", "Durant"}, {"Lefebvre", "Lefèvre"}}
	for _, p := range pairs {
		if ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0]); ab != ba {
			t.Errorf("Similarity not symmetric for %v: %v vs %v", p, ab, ba)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Famille Élodie (1890)", "famille_elodie_1890"},
		{"Smith-Family.ged", "smith_family_ged"},
		{"***", "unknown"},
		{"", "unknown"},
		{"  already_ok  ", "already_ok"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeToken(tt.in); got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
