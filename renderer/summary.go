package renderer

import (
	"github.com/jdoucet/csvt"
)

// summaryRow is the view model for one line of the summary table.
type summaryRow struct {
	Tag    string
	Count  int
	Credit string
	Debit  string
	Net    string
}

// Summary renders the per-tag totals as a markdown table, buckets in
// first-occurrence order.
func Summary(sum *csvt.Summary, currency string) string {
	rows := make([]summaryRow, 0, len(sum.Totals()))
	for _, t := range sum.Totals() {
		rows = append(rows, summaryRow{
			Tag:    t.Tag,
			Count:  t.Count,
			Credit: Amount(t.Credit, currency),
			Debit:  Amount(t.Debit, currency),
			Net:    Amount(t.Net(), currency),
		})
	}
	return renderTemplate("summary", "summary.md", nil, struct{ Rows []summaryRow }{rows})
}
