package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jdoucet/csvt"
)

var highlighted = lipgloss.NewStyle().Reverse(true)

// Calendar renders the months spanned by the given dates, highlighting
// each of them. A line usually carries dates a few days apart, so this is
// one month, or two when the dates straddle a month boundary. It is a pure
// function from dates to text.
func Calendar(dates []csvt.Date) string {
	if len(dates) == 0 {
		return ""
	}
	lo, hi := dates[0], dates[0]
	highlight := make(map[csvt.Date]bool, len(dates))
	for _, d := range dates {
		highlight[d] = true
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}

	var b strings.Builder
	b.WriteString(month(lo.Year(), lo.Month(), highlight))
	if lo.Year() != hi.Year() || lo.Month() != hi.Month() {
		b.WriteString("\n")
		b.WriteString(month(hi.Year(), hi.Month(), highlight))
	}
	return b.String()
}

// month renders one month grid, weeks starting on Monday.
func month(year int, m time.Month, highlight map[csvt.Date]bool) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", m, year)
	if pad := (20 - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title + "\n")
	b.WriteString("Mo Tu We Th Fr Sa Su\n")

	first := csvt.NewDate(year, m, 1)
	// Column of the first day, Monday in column 0.
	cells := make([]string, 0, 7)
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		cells = append(cells, "  ")
	}
	for day := first; day.Month() == m; day = day.Add(1) {
		cell := fmt.Sprintf("%2d", day.Day())
		if highlight[day] {
			cell = highlighted.Render(cell)
		}
		cells = append(cells, cell)
		if len(cells) == 7 {
			b.WriteString(strings.Join(cells, " ") + "\n")
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	return b.String()
}
