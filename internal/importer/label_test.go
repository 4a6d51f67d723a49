package importer

import "testing"

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/trees/famille_dupont-1900.ged", "Famille Dupont 1900"},
		{"élodie.martin.GED", "Élodie Martin"},
		{"___.ged", "Imported Tree"},
		{"", "Imported Tree"},
	}
	for _, tt := range tests {
		if got := deriveLabel(tt.in); got != tt.want {
			t.Errorf("deriveLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
