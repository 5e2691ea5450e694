package csvt

import (
	"errors"
	"fmt"
)

// ActionKind is a typed name for one of the tagging-session transitions.
type ActionKind string

// The transitions a session understands.
const (
	ActionNext         ActionKind = "next"
	ActionPrev         ActionKind = "prev"
	ActionNextUntagged ActionKind = "next-untagged"
	ActionPrevUntagged ActionKind = "prev-untagged"
	ActionAssign       ActionKind = "assign"
)

// Command symbols understood by ParseAction. They are reserved and cannot
// be used as tags.
const (
	SymbolPrev         = "<"
	SymbolNext         = ">"
	SymbolPrevUntagged = "«"
	SymbolNextUntagged = "»"
)

// Action is one state transition requested by the user. Assign carries the
// tag to record; the other kinds only move the cursor.
type Action struct {
	Kind ActionKind
	Tag  string
}

// ParseAction maps one line of user input to an Action. An empty input
// means "next line"; anything that is not a reserved symbol is a tag
// assignment. Quit and help inputs are the caller's business and must be
// filtered out before calling ParseAction.
func ParseAction(input string) Action {
	switch input {
	case SymbolPrev:
		return Action{Kind: ActionPrev}
	case SymbolNext, "":
		return Action{Kind: ActionNext}
	case SymbolPrevUntagged:
		return Action{Kind: ActionPrevUntagged}
	case SymbolNextUntagged:
		return Action{Kind: ActionNextUntagged}
	default:
		return Action{Kind: ActionAssign, Tag: input}
	}
}

// Apply performs one atomic transition on the state. For assignments, the
// commit of the tag and the advance to the next untagged line are a single
// step, so a caller persisting the state after Apply can never observe a
// half-applied action.
func (s *SheetState) Apply(a Action) error {
	if len(s.Data) == 0 {
		return errors.New("cannot navigate an empty sheet")
	}
	switch a.Kind {
	case ActionNext:
		s.NextLine()
	case ActionPrev:
		s.PrevLine()
	case ActionNextUntagged:
		s.NextUntagged()
	case ActionPrevUntagged:
		s.PrevUntagged()
	case ActionAssign:
		s.AssignTag(a.Tag)
	default:
		return fmt.Errorf("unknown action %q", a.Kind)
	}
	return nil
}

// NextLine moves the cursor one line forward, wrapping at the end.
func (s *SheetState) NextLine() { s.Cursor = (s.Cursor + 1) % len(s.Data) }

// PrevLine moves the cursor one line back, wrapping at the beginning.
func (s *SheetState) PrevLine() { s.Cursor = (s.Cursor - 1 + len(s.Data)) % len(s.Data) }

// NextUntagged moves the cursor to the nearest untagged line after the
// current one, excluding it. Unlike NextLine the scan does not wrap: when
// every later line is tagged the cursor stays put.
func (s *SheetState) NextUntagged() {
	for i := s.Cursor + 1; i < len(s.Data); i++ {
		if !s.Data[i].Tagged() {
			s.Cursor = i
			return
		}
	}
}

// PrevUntagged moves the cursor to the nearest untagged line before the
// current one, excluding it, without wrapping.
func (s *SheetState) PrevUntagged() {
	for i := s.Cursor - 1; i >= 0; i-- {
		if !s.Data[i].Tagged() {
			s.Cursor = i
			return
		}
	}
}

// AssignTag records the tag on the current line and advances to the next
// untagged one.
func (s *SheetState) AssignTag(name string) {
	s.Data[s.Cursor].Tag = name
	s.NextUntagged()
}
