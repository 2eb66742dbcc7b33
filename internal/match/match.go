// ABOUTME: Exact substring matching over two interchangeable classical algorithms
// ABOUTME: Knuth-Morris-Pratt and Boyer-Moore (bad-character rule), selected at runtime

package match

import (
	"errors"
	"fmt"
)

// Algorithm selects which exact-match algorithm Matches uses.
type Algorithm int

const (
	KMP Algorithm = iota
	BoyerMoore
)

// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
var ErrUnknownAlgorithm = errors.New("unknown matching algorithm")

// String returns the short name used in config and flags.
func (a Algorithm) String() string {
	switch a {
	case KMP:
		return "kmp"
	case BoyerMoore:
		return "bm"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Parse converts a flag/config value ("kmp" or "bm") into an Algorithm.
func Parse(s string) (Algorithm, error) {
	switch s {
	case "kmp":
		return KMP, nil
	case "bm":
		return BoyerMoore, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Matches reports whether pattern occurs as a contiguous substring of text.
// Both algorithms return identical results for identical inputs; they differ
// only in how many character comparisons they perform.
func Matches(algo Algorithm, pattern, text string) (bool, error) {
	switch algo {
	case KMP:
		return kmpMatch(pattern, text), nil
	case BoyerMoore:
		return bmMatch(pattern, text), nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// kmpMatch scans text once, sliding the pattern pointer back via the failure
// table on mismatch instead of restarting the comparison.
func kmpMatch(pattern, text string) bool {
	if len(pattern) == 0 {
		return true
	}
	n := len(pattern)
	m := len(text)
	lps := computeLPS(pattern)
	i, j := 0, 0
	for i < m {
		if pattern[j] == text[i] {
			i++
			j++
		}
		if j == n {
			return true
		} else if i < m && pattern[j] != text[i] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}
	return false
}

// computeLPS builds the longest-proper-prefix-suffix table for pattern.
// lps[0] is 0 by convention.
func computeLPS(pattern string) []int {
	n := len(pattern)
	lps := make([]int, n)
	length := 0
	i := 1
	for i < n {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else {
			if length != 0 {
				length = lps[length-1]
			} else {
				lps[i] = 0
				i++
			}
		}
	}
	return lps
}

// bmMatch compares right-to-left and shifts the window using the
// last-occurrence (bad character) heuristic only; no good-suffix rule.
// An unseen character maps to index -1.
func bmMatch(pattern, text string) bool {
	if len(pattern) == 0 {
		return true
	}
	n := len(text)
	m := len(pattern)
	if m > n {
		return false
	}
	last := make(map[byte]int, m)
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}
	i := m - 1
	j := m - 1
	for i <= n-1 {
		if pattern[j] == text[i] {
			if j == 0 {
				return true
			}
			i--
			j--
		} else {
			lastChar, ok := last[text[i]]
			if !ok {
				lastChar = -1
			}
			i = i + m - min(j, 1+lastChar)
			j = m - 1
		}
	}
	return false
}
