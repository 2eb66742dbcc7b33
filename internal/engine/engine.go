// ABOUTME: Utterance resolution engine: classify, dispatch, and format a decision
// ABOUTME: Pure function boundary; every failure is recovered into display text

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanyabot/tanya-go/internal/calendar"
	"github.com/tanyabot/tanya-go/internal/intent"
	"github.com/tanyabot/tanya-go/internal/log"
	"github.com/tanyabot/tanya-go/internal/match"
	"github.com/tanyabot/tanya-go/internal/mathexpr"
	"github.com/tanyabot/tanya-go/internal/qna"
	"github.com/tanyabot/tanya-go/internal/search"
)

// Result is the engine's decision for one utterance. The action is advisory:
// the caller applies it to storage and re-fetches the snapshot afterwards.
type Result struct {
	Action      qna.Action
	Record      qna.Record
	DisplayText string
}

// Resolve classifies the utterance and produces a Result. It never returns an
// error: invalid dates, bad arithmetic, and missing records all come back as
// fixed display messages. records is a read-only snapshot and is not mutated.
func Resolve(utterance string, records []qna.Record, algo match.Algorithm) Result {
	c := intent.Classify(utterance)
	log.Debug("resolve: kind=%s algo=%s", c.Kind, algo)

	switch c.Kind {
	case intent.KindDate:
		return resolveDate(c)
	case intent.KindMath:
		return resolveMath(c)
	case intent.KindAdd:
		return resolveAdd(c, records, algo)
	case intent.KindDelete:
		return resolveDelete(c, records, algo)
	default:
		return resolveQuestion(c, records, algo)
	}
}

func resolveDate(c intent.Classification) Result {
	name, err := calendar.WeekdayName(c.Day, c.Month, c.Year)
	if err != nil {
		return Result{
			Action:      qna.ActionNone,
			DisplayText: fmt.Sprintf("Tanggal %s tidak valid", c.RawDate),
		}
	}
	year := calendar.NormalizeYear(c.Year)
	return Result{
		Action: qna.ActionNone,
		DisplayText: fmt.Sprintf("%d %s %d adalah Hari %s",
			c.Day, calendar.Months[c.Month-1], year, name),
	}
}

func resolveMath(c intent.Classification) Result {
	if !mathexpr.IsWellFormed(c.Expr) {
		return Result{Action: qna.ActionNone, DisplayText: "Sintaks persamaan tidak valid"}
	}

	display := strings.ReplaceAll(c.Expr, " ", "")
	value, ok := mathexpr.Evaluate(c.Expr)
	if !ok {
		return Result{
			Action:      qna.ActionNone,
			DisplayText: fmt.Sprintf("Hasil dari %s adalah tidak terdefinisi", display),
		}
	}
	return Result{
		Action: qna.ActionNone,
		DisplayText: fmt.Sprintf("Hasil dari %s adalah %s",
			display, strconv.FormatFloat(value, 'f', -1, 64)),
	}
}

func resolveAdd(c intent.Classification, records []qna.Record, algo match.Algorithm) Result {
	existing, ok := findExisting(c.Question, records, algo)
	if ok {
		return Result{
			Action: qna.ActionUpdate,
			Record: qna.Record{
				ID:       existing.ID,
				Question: existing.Question,
				Answer:   c.Answer,
			},
			DisplayText: fmt.Sprintf("Jawaban untuk pertanyaan %q telah diperbarui", c.Question),
		}
	}
	return Result{
		Action:      qna.ActionAdd,
		Record:      qna.Record{Question: c.Question, Answer: c.Answer},
		DisplayText: fmt.Sprintf("Pertanyaan %q telah ditambahkan", c.Question),
	}
}

func resolveDelete(c intent.Classification, records []qna.Record, algo match.Algorithm) Result {
	existing, ok := findExisting(c.Question, records, algo)
	if !ok {
		return Result{
			Action:      qna.ActionNone,
			DisplayText: fmt.Sprintf("Tidak ada pertanyaan %q di database", c.Question),
		}
	}
	return Result{
		Action:      qna.ActionDelete,
		Record:      existing,
		DisplayText: fmt.Sprintf("Pertanyaan %q telah dihapus", c.Question),
	}
}

func resolveQuestion(c intent.Classification, records []qna.Record, algo match.Algorithm) Result {
	res, err := search.Search(c.Question, records, algo)
	if err != nil {
		// Unreachable with the closed Algorithm enum; fail loudly in text
		// rather than matching nothing silently.
		log.Error("search: %v", err)
		return Result{Action: qna.ActionNone, DisplayText: "Algoritma pencocokan tidak dikenali"}
	}

	if res.Found {
		return Result{Action: qna.ActionGet, Record: res.Record, DisplayText: res.Record.Answer}
	}

	var b strings.Builder
	b.WriteString("Pertanyaan tidak ditemukan di database.")
	if len(res.Suggestions) > 0 {
		b.WriteString("\nMungkin maksud Anda:")
		for i, q := range res.Suggestions {
			fmt.Fprintf(&b, "\n%d. %s", i+1, q)
		}
	}
	return Result{
		Action:      qna.ActionGet,
		Record:      qna.Record{Question: c.Question, Answer: strings.Join(res.Suggestions, "; ")},
		DisplayText: b.String(),
	}
}

// findExisting reports the first stored record whose normalized question
// contains the normalized query. Used by the add/update and delete routes.
func findExisting(question string, records []qna.Record, algo match.Algorithm) (qna.Record, bool) {
	normQ := qna.NormalizeCompact(question)
	if normQ == "" {
		return qna.Record{}, false
	}
	for _, r := range records {
		normStored := qna.NormalizeCompact(r.Question)
		if normStored == "" {
			continue
		}
		ok, err := match.Matches(algo, normQ, normStored)
		if err != nil {
			log.Error("match: %v", err)
			return qna.Record{}, false
		}
		if ok {
			return r, true
		}
	}
	return qna.Record{}, false
}
