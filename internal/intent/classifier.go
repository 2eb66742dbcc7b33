// ABOUTME: Regex-driven utterance classifier evaluated in fixed priority order
// ABOUTME: Date > math > add > delete > free-form question; patterns may overlap

package intent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// dateRE matches d/m/y anywhere, with /, - or space separators and a
	// two- or four-digit year.
	dateRE = regexp.MustCompile(`\b(\d{1,2})[/\- ](\d{1,2})[/\- ](\d{2}(?:\d{2})?)\b`)

	// mathTriggerRE detects two numbers joined by an operator or parenthesis.
	mathTriggerRE = regexp.MustCompile(`\d+\s*[+\-*/^()]\s*\d+`)

	// nonArithmeticRE strips everything outside the evaluator's character set.
	nonArithmeticRE = regexp.MustCompile(`[^0-9.()+\-*/^ ]`)

	// addRE captures the question and answer of an add/update command.
	addRE = regexp.MustCompile(`(?i)^\s*(?:tambahkan|tambah)(?:\s+pertanyaan)?\s+(.+?)\s+(?:dengan\s+jawaban|jawaban|jawab)\s+(.+?)\s*$`)

	// deleteRE captures the question of a delete command.
	deleteRE = regexp.MustCompile(`(?i)^\s*hapus(?:\s+pertanyaan)?\s+(.+?)\s*$`)
)

// Classify determines what the utterance asks for. One utterance, one
// decision; the first pattern to match in priority order wins.
func Classify(input string) Classification {
	if m := dateRE.FindStringSubmatch(input); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return Classification{
			Kind:    KindDate,
			Day:     day,
			Month:   month,
			Year:    year,
			RawDate: m[0],
		}
	}

	if mathTriggerRE.MatchString(input) {
		expr := strings.TrimSpace(nonArithmeticRE.ReplaceAllString(input, ""))
		return Classification{Kind: KindMath, Expr: expr}
	}

	if m := addRE.FindStringSubmatch(input); m != nil {
		return Classification{Kind: KindAdd, Question: m[1], Answer: m[2]}
	}

	if m := deleteRE.FindStringSubmatch(input); m != nil {
		return Classification{Kind: KindDelete, Question: m[1]}
	}

	return Classification{Kind: KindQuestion, Question: strings.TrimSpace(input)}
}
