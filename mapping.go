package csvt

import "fmt"

// Mapping assigns raw column indices to semantic fields. It is fixed for
// the lifetime of a sheet: changing the mapping means re-importing the
// file.
//
// Tag is the column reserved for tag storage in the source file. It is not
// read at parse time, tags always start unset, but the index is kept so a
// future export can write tags back where they belong.
type Mapping struct {
	Dates  map[string]int `json:"dates"`
	Tag    int            `json:"tag"`
	Infos  map[string]int `json:"infos"`
	Debit  int            `json:"debit"`
	Credit int            `json:"credit"`
}

// NewMapping returns an empty mapping ready to be filled.
func NewMapping() Mapping {
	return Mapping{Dates: make(map[string]int), Infos: make(map[string]int)}
}

// Validate checks that every mapped column index exists in a row of the
// given width.
func (m Mapping) Validate(width int) error {
	check := func(name string, col int) error {
		if col < 0 || col >= width {
			return fmt.Errorf("column %d for %s out of range [0,%d)", col, name, width)
		}
		return nil
	}
	if err := check("tag", m.Tag); err != nil {
		return err
	}
	if err := check("debit", m.Debit); err != nil {
		return err
	}
	if err := check("credit", m.Credit); err != nil {
		return err
	}
	for name, col := range m.Dates {
		if err := check("date field "+name, col); err != nil {
			return err
		}
	}
	for name, col := range m.Infos {
		if err := check("info field "+name, col); err != nil {
			return err
		}
	}
	return nil
}
