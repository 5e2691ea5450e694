package csvt

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Sample sheet generation, used by the `csvt sample` command and by tests.
// The header names mimic the CSV export of a French bank account, which is
// the kind of file this tool was written to tag.

var (
	sampleHeaders = []string{
		"Libelle operation",
		"Libelle simplifie",
		"Informations complementaires",
		"Type operation",
		"Debit",
		"Credit",
		"Reference",
		"Pointage operation",
		"Categorie",
		"Sous categorie",
		"Date de comptabilisation",
		"Date operation",
		"Date de valeur",
	}

	sampleCategories = []string{"Vacances", "Logement", "Restauration"}
	sampleWords      = []string{"Baguette", "Epice", "Marche", "France", "Pharmacie", "Univ", "DDFIP"}
	sampleOpTypes    = []string{"Virement", "Carte Bleue", "Prelevement"}
	samplePrefixes   = []string{"VIR", "CB", "PRV"}
)

// frenchDateFormat is how the bank prints dates, and the first layout of
// DateFormats.
const frenchDateFormat = "02/01/2006"

// SampleMapping returns the column mapping matching SampleSheet's header.
func SampleMapping() Mapping {
	return Mapping{
		Dates: map[string]int{
			"Date de comptabilisation": 10,
			"Date operation":           11,
			"Date de valeur":           12,
		},
		Tag: 8,
		Infos: map[string]int{
			"Libelle operation": 0,
			"Type operation":    3,
		},
		Debit:  4,
		Credit: 5,
	}
}

// IsSampleHeader reports whether a row is the header SampleSheet writes,
// so callers can offer SampleMapping instead of asking for every column.
func IsSampleHeader(row []string) bool {
	if len(row) != len(sampleHeaders) {
		return false
	}
	for i, h := range sampleHeaders {
		if row[i] != h {
			return false
		}
	}
	return true
}

// SampleSheet returns a header row followed by n random transaction rows
// for the given month. Each row carries three sorted dates in the bank's
// DD/MM/YYYY format, and either a debit or a credit.
func SampleSheet(year int, month time.Month, n int, rng *rand.Rand) [][]string {
	rows := make([][]string, 0, n+1)
	rows = append(rows, append([]string(nil), sampleHeaders...))

	first := NewDate(year, month, 1)
	last := NewDate(year, month+1, 1).Add(-1)
	for i := 0; i < n; i++ {
		rows = append(rows, sampleRow(first, last, rng))
	}
	return rows
}

func sampleRow(first, last Date, rng *rand.Rand) []string {
	kind := rng.Intn(len(sampleOpTypes))
	company := sampleWords[rng.Intn(len(sampleWords))] + sampleWords[rng.Intn(len(sampleWords))]
	amount := float64(rng.Intn(106)-55) + 5*rng.Float64()

	infix := "REMUNERATION"
	debit, credit := 0.0, amount
	if amount < 0 {
		infix = "FACT"
		debit, credit = -amount, 0
	}

	// Three dates at most a few days apart, printed in ascending order.
	anchor := randomDate(first, last, rng)
	lo, hi := maxDate(first, anchor.Add(-5)), minDate(last, anchor.Add(5))
	dates := []Date{randomDate(lo, hi, rng), randomDate(lo, hi, rng), randomDate(lo, hi, rng)}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return []string{
		fmt.Sprintf("%s %s %s", samplePrefixes[kind], infix, company),
		fmt.Sprintf("%s %s", infix, company),
		"-",
		sampleOpTypes[kind],
		fmt.Sprintf("%.2f", debit),
		fmt.Sprintf("%.2f", credit),
		uuid.NewString(),
		"0",
		sampleCategories[rng.Intn(len(sampleCategories))],
		"-",
		dates[0].Format(frenchDateFormat),
		dates[1].Format(frenchDateFormat),
		dates[2].Format(frenchDateFormat),
	}
}

// randomDate picks a date between the two endpoints, included.
func randomDate(first, last Date, rng *rand.Rand) Date {
	span := int(last.time().Sub(first.time()) / (24 * time.Hour))
	if span <= 0 {
		return first
	}
	return first.Add(rng.Intn(span + 1))
}

func minDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}
