package csvt

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadOptions control how a raw table is read.
type ReadOptions struct {
	Comma rune // field delimiter, ';' when zero
	Quote rune // quote character, standard CSV quoting when zero or '"'
}

// ReadTable reads a delimited file into rows of cells. Rows may have
// different widths; short rows are caught later by Mapping.Validate.
//
// encoding/csv only knows double-quote quoting, but bank exports
// sometimes quote with another character (the export this tool was built
// for uses '|'), so a non-standard quote goes through a dedicated
// splitter.
func ReadTable(r io.Reader, opts ReadOptions) ([][]string, error) {
	if opts.Comma == 0 {
		opts.Comma = ';'
	}
	if opts.Quote == 0 || opts.Quote == '"' {
		cr := csv.NewReader(r)
		cr.Comma = opts.Comma
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("cannot read table: %w", err)
		}
		return rows, nil
	}
	return readQuoted(r, opts.Comma, opts.Quote)
}

// readQuoted splits lines on the delimiter, honoring a non-standard quote
// rune. Quoted fields cannot span lines.
func readQuoted(r io.Reader, comma, quote rune) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		var row []string
		var field strings.Builder
		inQuote := false
		for _, c := range line {
			switch {
			case c == quote:
				inQuote = !inQuote
			case c == comma && !inQuote:
				row = append(row, field.String())
				field.Reset()
			default:
				field.WriteRune(c)
			}
		}
		row = append(row, field.String())
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read table: %w", err)
	}
	return rows, nil
}
