package csvt

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testMapping matches the rows used across the package tests:
// date, tag, label, debit, credit.
func testMapping() Mapping {
	return Mapping{
		Dates:  map[string]int{"date": 0},
		Tag:    1,
		Infos:  map[string]int{"label": 2},
		Debit:  3,
		Credit: 4,
	}
}

func TestBuildLine(t *testing.T) {
	raw := []string{"07/03/2024", "", "BAGUETTE SARL", "12.50", "0.00"}
	l, err := BuildLine(raw, testMapping())
	if err != nil {
		t.Fatalf("BuildLine failed: %v", err)
	}
	if got := l.Dates["date"]; got != NewDate(2024, time.March, 7) {
		t.Errorf("date = %v, want 2024-03-07", got)
	}
	if got := l.Infos["label"]; got != "BAGUETTE SARL" {
		t.Errorf("label = %q, want %q", got, "BAGUETTE SARL")
	}
	if !l.Debit.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("debit = %s, want 12.50", l.Debit)
	}
	if !l.Credit.IsZero() {
		t.Errorf("credit = %s, want 0", l.Credit)
	}
	if l.Tagged() {
		t.Error("fresh line is tagged")
	}
	if !l.Balance().Equal(decimal.RequireFromString("-12.50")) {
		t.Errorf("balance = %s, want -12.50", l.Balance())
	}
	if !reflect.DeepEqual(l.RawContent, raw) {
		t.Errorf("raw content = %v, want %v", l.RawContent, raw)
	}
}

func TestBuildLineDeterministic(t *testing.T) {
	raw := []string{"07/03/2024", "", "BAGUETTE SARL", "12.50", "0.00"}
	a, err := BuildLine(raw, testMapping())
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildLine(raw, testMapping())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two builds of the same row differ: %+v vs %+v", a, b)
	}
}

func TestBuildLineBadAmount(t *testing.T) {
	// Unreadable amount cells are coerced to zero, not errors.
	raw := []string{"07/03/2024", "", "x", "abc", ""}
	l, err := BuildLine(raw, testMapping())
	if err != nil {
		t.Fatalf("BuildLine failed: %v", err)
	}
	if !l.Debit.IsZero() || !l.Credit.IsZero() {
		t.Errorf("debit, credit = %s, %s, want 0, 0", l.Debit, l.Credit)
	}
}

func TestBuildLineBadDate(t *testing.T) {
	raw := []string{"31/02/2024", "", "x", "1", "0"}
	_, err := BuildLine(raw, testMapping())
	if err == nil {
		t.Fatal("BuildLine unexpectedly succeeded on a bad date")
	}
	var perr *DateParseError
	if !errors.As(err, &perr) {
		t.Errorf("error is %T, want to wrap *DateParseError", err)
	}
}

func TestBuildLineShortRow(t *testing.T) {
	if _, err := BuildLine([]string{"07/03/2024", ""}, testMapping()); err == nil {
		t.Fatal("BuildLine unexpectedly accepted a row narrower than the mapping")
	}
}

func TestMappingValidate(t *testing.T) {
	m := testMapping()
	if err := m.Validate(5); err != nil {
		t.Errorf("Validate(5) = %v, want nil", err)
	}
	if err := m.Validate(3); err == nil {
		t.Error("Validate(3) = nil, want error: credit column 4 out of range")
	}
	m.Dates["extra"] = -1
	if err := m.Validate(5); err == nil {
		t.Error("Validate accepted a negative column")
	}
}
