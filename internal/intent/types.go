// ABOUTME: Intent classification types for routing user utterances
// ABOUTME: Defines the Kind enum and the Classification result with extracted payloads

package intent

import "fmt"

// Kind is the classified purpose of an utterance.
type Kind int

const (
	KindDate     Kind = iota // date query, e.g. "hari apa 17/8/1945"
	KindMath                 // arithmetic expression
	KindAdd                  // add or update a stored question
	KindDelete               // delete a stored question
	KindQuestion             // free-form question, answered by search
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindMath:
		return "math"
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	case KindQuestion:
		return "question"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Classification holds the classified kind plus the payload extracted by the
// matching pattern. Only the fields for the matched kind are populated.
type Classification struct {
	Kind Kind

	// KindDate
	Day, Month, Year int
	RawDate          string // matched date text, original casing

	// KindMath
	Expr string // input filtered to the arithmetic character set

	// KindAdd and KindDelete
	Question string
	Answer   string // KindAdd only
}
