// ABOUTME: QnARecord type and the shared text normalization used for comparisons
// ABOUTME: One normalization rule for every consumer; displayed text keeps original casing

package qna

import (
	"regexp"
	"strings"
)

// Record is one stored question/answer pair. The ID is opaque; the engine
// never interprets it.
type Record struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s and strips everything outside [\w\s]. All question
// comparisons go through this; display text never does.
func Normalize(s string) string {
	return strings.TrimSpace(nonWordRE.ReplaceAllString(strings.ToLower(s), ""))
}

// NormalizeCompact is Normalize with whitespace removed as well. The search
// path uses this so spacing differences cannot defeat a substring match.
func NormalizeCompact(s string) string {
	return whitespaceRE.ReplaceAllString(Normalize(s), "")
}
