package csvt

import "github.com/shopspring/decimal"

// UntaggedBucket is the summary bucket that collects lines without a tag.
const UntaggedBucket = "UNTAGGED"

// TagTotal aggregates the lines carrying one tag.
type TagTotal struct {
	Tag    string
	Count  int
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Net returns credit minus debit for the bucket.
func (t TagTotal) Net() decimal.Decimal { return t.Credit.Sub(t.Debit) }

// Summary is the per-tag aggregation of a sheet. Buckets keep the order in
// which their tag first occurs in the data, so the rendered output is
// reproducible from one run to the next.
type Summary struct {
	totals []TagTotal
	index  map[string]int
}

// Totals returns the buckets in first-occurrence order.
func (s *Summary) Totals() []TagTotal {
	if s == nil {
		return nil
	}
	return s.totals
}

// Get returns the bucket for a tag.
func (s *Summary) Get(tag string) (TagTotal, bool) {
	i, ok := s.index[tag]
	if !ok {
		return TagTotal{}, false
	}
	return s.totals[i], true
}

// Summarize aggregates the sheet per tag. Untagged lines are grouped under
// UntaggedBucket. An empty sheet yields an empty summary.
func Summarize(s *SheetState) *Summary {
	sum := &Summary{index: make(map[string]int)}
	for _, l := range s.Data {
		tag := l.Tag
		if tag == "" {
			tag = UntaggedBucket
		}
		i, ok := sum.index[tag]
		if !ok {
			i = len(sum.totals)
			sum.index[tag] = i
			sum.totals = append(sum.totals, TagTotal{Tag: tag})
		}
		t := &sum.totals[i]
		t.Count++
		t.Credit = t.Credit.Add(l.Credit)
		t.Debit = t.Debit.Add(l.Debit)
	}
	return sum
}
