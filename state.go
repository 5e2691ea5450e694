package csvt

import (
	"errors"
	"fmt"
	"slices"
)

// CurrentVersion is the format version written into new state files.
// Loading a file written by another version is allowed: the mismatch is a
// warning for the user, not an error.
const CurrentVersion = "0.1.0"

// SheetState is the full persisted tagging session: the column mapping,
// the parsed lines, the cursor, and the raw rows that preceded the data
// start.
//
// Data is index-stable: the position of a line is its identity, used by
// the cursor and the untagged scans. Lines are never reordered after
// construction. Unparsed rows (typically headers) are kept verbatim for
// fidelity and excluded from every tagging and aggregation operation.
type SheetState struct {
	Version  string     `json:"version"`
	Cursor   int        `json:"cursor"`
	Mapping  Mapping    `json:"mapping"`
	Data     []Line     `json:"data"`
	Unparsed [][]string `json:"unparsed"`
}

// Upgrade builds a fresh SheetState from a raw table. Rows before start
// are copied verbatim into Unparsed; the rest are parsed into Lines. A
// single bad row aborts the whole import: there is no partial sheet.
func Upgrade(table [][]string, start int, m Mapping) (*SheetState, error) {
	if start < 0 || start > len(table) {
		return nil, fmt.Errorf("start line %d out of range [0,%d]", start, len(table))
	}
	s := &SheetState{
		Version:  CurrentVersion,
		Mapping:  m,
		Data:     make([]Line, 0, len(table)-start),
		Unparsed: make([][]string, 0, start),
	}
	for _, row := range table[:start] {
		s.Unparsed = append(s.Unparsed, slices.Clone(row))
	}
	for i, row := range table[start:] {
		l, err := BuildLine(row, m)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", start+i+1, err)
		}
		s.Data = append(s.Data, l)
	}
	return s, nil
}

// Check verifies the structural invariants of a state, typically right
// after decoding it from a file.
func (s *SheetState) Check() error {
	if s.Version == "" {
		return errors.New("missing version")
	}
	if len(s.Data) == 0 {
		if s.Cursor != 0 {
			return fmt.Errorf("cursor %d on an empty sheet", s.Cursor)
		}
	} else if s.Cursor < 0 || s.Cursor >= len(s.Data) {
		return fmt.Errorf("cursor %d out of range [0,%d)", s.Cursor, len(s.Data))
	}
	for i, l := range s.Data {
		if err := s.Mapping.Validate(len(l.RawContent)); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return nil
}

// CompatibleVersion reports whether the state was written by the running
// version of the program.
func (s *SheetState) CompatibleVersion() bool { return s.Version == CurrentVersion }

// Current returns the line under the cursor. It must not be called on an
// empty sheet.
func (s *SheetState) Current() *Line { return &s.Data[s.Cursor] }

// Tagged returns the number of lines carrying a tag.
func (s *SheetState) Tagged() int {
	n := 0
	for _, l := range s.Data {
		if l.Tagged() {
			n++
		}
	}
	return n
}

// Skipped returns the number of untagged lines before the cursor, the
// ones the user has moved past without tagging.
func (s *SheetState) Skipped() int {
	n := 0
	for _, l := range s.Data[:s.Cursor] {
		if !l.Tagged() {
			n++
		}
	}
	return n
}
