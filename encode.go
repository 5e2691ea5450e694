package csvt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeState writes the state as a single JSON document followed by a
// newline. Field order is fixed, so two encodings of the same state are
// byte-identical.
func EncodeState(w io.Writer, s *SheetState) error {
	var jw jsonObjectWriter
	jw.Append("version", s.Version)
	jw.Append("cursor", s.Cursor)
	jw.Append("mapping", s.Mapping)
	jw.Append("data", s.Data)
	jw.Append("unparsed", s.Unparsed)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write state: %w", err)
	}
	return nil
}

// DecodeState reads a state document back. Structural problems (malformed
// JSON, wrong types, broken invariants) are fatal. A version mismatch is
// not: decoding succeeds and callers consult CompatibleVersion to warn the
// user.
func DecodeState(r io.Reader) (*SheetState, error) {
	var s SheetState
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid state document: %w", err)
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("invalid state document: %w", err)
	}
	return &s, nil
}

// SaveState overwrites the whole state file in place. It is called after
// every applied action, so a crash between two actions loses at most the
// in-flight one.
func SaveState(path string, s *SheetState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create state file %q: %w", path, err)
	}
	if err := EncodeState(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadState reads a state file.
func LoadState(path string) (*SheetState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open state file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeState(f)
}
