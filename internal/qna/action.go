// ABOUTME: Action enum describing what a resolution asks storage to change
// ABOUTME: Advisory only; Store.Apply carries the instruction out

package qna

import "fmt"

// Action is the caller-facing instruction attached to a resolution result.
type Action int

const (
	ActionNone Action = iota
	ActionGet
	ActionAdd
	ActionUpdate
	ActionDelete
)

// String returns the action name used in JSON output.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionGet:
		return "get"
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Apply carries out an advisory action on the store. None and get are no-ops.
func (s *Store) Apply(action Action, r Record) error {
	switch action {
	case ActionAdd:
		_, err := s.Add(r.Question, r.Answer)
		return err
	case ActionUpdate:
		return s.UpdateAnswer(r.ID, r.Answer)
	case ActionDelete:
		return s.Delete(r.ID)
	default:
		return nil
	}
}
