// ABOUTME: Knowledge-base lookup with exact-first, fuzzy-fallback tie-break policy
// ABOUTME: Exact substring hit wins immediately; else best similarity >= 90; else top-3 suggestions

package search

import (
	"sort"

	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/qna"
	"github.com/tanyabot/tanya-go/internal/similarity"
)

// Threshold is the minimum similarity percentage for a fuzzy match.
const Threshold = 90.0

// MaxSuggestions caps the "did you mean" candidate list.
const MaxSuggestions = 3

// Result is the outcome of one lookup.
type Result struct {
	Found  bool       // an exact or fuzzy match was accepted
	Exact  bool       // the match came from the exact path
	Score  float64    // similarity of the accepted fuzzy match (100 for exact)
	Record qna.Record // the accepted record; zero when !Found

	// Suggestions holds the closest stored questions (best first) when no
	// match was accepted.
	Suggestions []string
}

// Search finds the stored record answering query. Comparisons use the compact
// normalization; returned records keep their original text.
//
// Policy, in order: first record whose normalized question contains the
// normalized query wins immediately. Otherwise the highest-scoring record at
// or above Threshold wins, earliest record breaking ties. Otherwise the top
// MaxSuggestions questions by similarity are returned as suggestions.
func Search(query string, records []qna.Record, algo match.Algorithm) (Result, error) {
	normQuery := qna.NormalizeCompact(query)

	// Exact pass. Empty patterns never reach the matcher.
	if normQuery != "" {
		for _, r := range records {
			normQuestion := qna.NormalizeCompact(r.Question)
			if normQuestion == "" {
				continue
			}
			ok, err := match.Matches(algo, normQuery, normQuestion)
			if err != nil {
				return Result{}, err
			}
			if ok {
				return Result{Found: true, Exact: true, Score: 100, Record: r}, nil
			}
		}
	}

	// Fuzzy pass: strictly-higher wins, so the earliest record keeps ties.
	best := -1
	bestScore := 0.0
	scores := make([]float64, len(records))
	for i, r := range records {
		score := similarity.Percentage(normQuery, qna.NormalizeCompact(r.Question))
		scores[i] = score
		if score >= Threshold && score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		return Result{Found: true, Score: bestScore, Record: records[best]}, nil
	}

	// Suggestion pass: stable sort keeps iteration order for equal scores.
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	n := min(MaxSuggestions, len(order))
	suggestions := make([]string, 0, n)
	for _, idx := range order[:n] {
		suggestions = append(suggestions, records[idx].Question)
	}
	return Result{Suggestions: suggestions}, nil
}
