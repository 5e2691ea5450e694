package csvt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one parsed, taggable spreadsheet row.
//
// RawContent keeps the whole original row, index-aligned with the source
// header, so a line can always be traced back to the export it came from,
// whatever columns were mapped. Tag is the only field that changes after
// construction; the empty string means untagged.
type Line struct {
	RawContent []string          `json:"raw_content"`
	Dates      map[string]Date   `json:"dates"`
	Tag        string            `json:"tag,omitempty"`
	Infos      map[string]string `json:"infos"`
	Debit      decimal.Decimal   `json:"debit"`
	Credit     decimal.Decimal   `json:"credit"`
}

// Tagged reports whether a tag has been assigned to the line.
func (l Line) Tagged() bool { return l.Tag != "" }

// Balance returns credit minus debit.
func (l Line) Balance() decimal.Decimal { return l.Credit.Sub(l.Debit) }

// BuildLine converts one raw row into a Line using the column mapping.
//
// Every mapped date cell must parse: a single bad date fails the whole row
// with an error wrapping *DateParseError, there is no partially imported
// line. Malformed debit or credit cells are tolerated and coerced to zero,
// banks routinely leave one of the two columns empty.
func BuildLine(raw []string, m Mapping) (Line, error) {
	if err := m.Validate(len(raw)); err != nil {
		return Line{}, fmt.Errorf("row with %d columns: %w", len(raw), err)
	}
	dates := make(map[string]Date, len(m.Dates))
	for name, col := range m.Dates {
		d, err := ParseDate(raw[col])
		if err != nil {
			return Line{}, fmt.Errorf("date field %q: %w", name, err)
		}
		dates[name] = d
	}
	infos := make(map[string]string, len(m.Infos))
	for name, col := range m.Infos {
		infos[name] = raw[col]
	}
	return Line{
		RawContent: slices.Clone(raw),
		Dates:      dates,
		Infos:      infos,
		Debit:      parseAmount(raw[m.Debit]),
		Credit:     parseAmount(raw[m.Credit]),
	}, nil
}

// parseAmount reads a numeric cell, coercing anything unreadable to zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MarshalJSON writes the line with a fixed field order, so that two
// encodings of the same line are byte-identical.
func (l Line) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("raw_content", l.RawContent)
	w.Append("dates", l.Dates)
	w.Optional("tag", l.Tag)
	w.Append("infos", l.Infos)
	w.Append("debit", l.Debit)
	w.Append("credit", l.Credit)
	return w.MarshalJSON()
}
