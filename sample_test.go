package csvt

import (
	"math/rand"
	"testing"
	"time"
)

func TestSampleSheetUpgrades(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := SampleSheet(2024, time.March, 10, rng)
	if len(rows) != 11 {
		t.Fatalf("len(rows) = %d, want header + 10", len(rows))
	}
	if !IsSampleHeader(rows[0]) {
		t.Errorf("first row is not the sample header: %v", rows[0])
	}

	s, err := Upgrade(rows, 1, SampleMapping())
	if err != nil {
		t.Fatalf("a generated sheet must import cleanly: %v", err)
	}
	if len(s.Data) != 10 {
		t.Fatalf("len(Data) = %d, want 10", len(s.Data))
	}

	for i, l := range s.Data {
		if len(l.Dates) != 3 {
			t.Errorf("line %d has %d dates, want 3", i, len(l.Dates))
		}
		for name, d := range l.Dates {
			if d.Before(NewDate(2024, time.February, 20)) || d.After(NewDate(2024, time.April, 10)) {
				t.Errorf("line %d date %q = %v, far outside March 2024", i, name, d)
			}
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			t.Errorf("line %d carries both a debit and a credit", i)
		}
		if l.Tagged() {
			t.Errorf("line %d starts tagged: %q", i, l.Tag)
		}
	}
}

func TestSampleSheetDeterministic(t *testing.T) {
	a := SampleSheet(2024, time.May, 5, rand.New(rand.NewSource(7)))
	b := SampleSheet(2024, time.May, 5, rand.New(rand.NewSource(7)))
	// Rows differ only by their random uuid reference column.
	for i := range a {
		for j := range a[i] {
			if j == 6 {
				continue
			}
			if a[i][j] != b[i][j] {
				t.Errorf("row %d col %d: %q vs %q with the same seed", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestIsSampleHeader(t *testing.T) {
	if IsSampleHeader([]string{"Libelle operation"}) {
		t.Error("a short row matched the sample header")
	}
	if IsSampleHeader(nil) {
		t.Error("nil matched the sample header")
	}
}
