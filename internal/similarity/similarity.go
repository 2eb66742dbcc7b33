// ABOUTME: Normalized edit-distance similarity between two strings
// ABOUTME: Classic O(a*b) Levenshtein with unit costs, scored as a 0-100 percentage

package similarity

// Levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions needed to turn a into b. Unit costs only;
// no transposition discount.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rolling rows instead of the full matrix.
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

// Percentage scores how similar a and b are, in [0,100]:
// (1 - levenshtein/max(len)) * 100. Two empty strings are 100.
func Percentage(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 100
	}
	return (1 - float64(Levenshtein(a, b))/float64(longest)) * 100
}
