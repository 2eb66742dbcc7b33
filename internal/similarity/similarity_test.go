// ABOUTME: Tests for Levenshtein distance and the similarity percentage
// ABOUTME: Covers identity, empty strings, symmetry, and known distances

package similarity

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"siapa presiden", "siapa presiden", 0},
		{"siapa presiden", "siapa presidn", 1},
		{"abc", "cba", 2},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
		// Symmetry holds for unit costs.
		if got := Levenshtein(tt.b, tt.a); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d; want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	if got := Percentage("", ""); got != 100 {
		t.Errorf("Percentage of two empty strings = %v; want 100", got)
	}
	if got := Percentage("siapa presiden", "siapa presiden"); got != 100 {
		t.Errorf("Percentage of identical strings = %v; want 100", got)
	}
	if got := Percentage("abc", ""); got != 0 {
		t.Errorf("Percentage against empty = %v; want 0", got)
	}

	// One edit over ten characters: 90%.
	if got := Percentage("aaaaaaaaaa", "aaaaaaaaab"); got != 90 {
		t.Errorf("Percentage = %v; want 90", got)
	}

	// Bounds.
	for _, pair := range [][2]string{{"abc", "xyz"}, {"a", "abcdefgh"}, {"halo", "hallo"}} {
		got := Percentage(pair[0], pair[1])
		if got < 0 || got > 100 {
			t.Errorf("Percentage(%q, %q) = %v; out of [0,100]", pair[0], pair[1], got)
		}
	}
}
