package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/jdoucet/csvt"
)

func TestCalendarSingleMonth(t *testing.T) {
	got := Calendar([]csvt.Date{
		csvt.NewDate(2024, time.March, 7),
		csvt.NewDate(2024, time.March, 9),
	})

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("Calendar = %q, too short", got)
	}
	if !strings.Contains(lines[0], "March 2024") {
		t.Errorf("title = %q, want March 2024", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Errorf("weekday header = %q", lines[1])
	}
	// 1 March 2024 is a Friday: four leading empty cells.
	if !strings.HasPrefix(lines[2], strings.Repeat("  ", 4)) {
		t.Errorf("first week = %q, want four leading blanks", lines[2])
	}
	if !strings.Contains(got, "31") {
		t.Errorf("Calendar = %q, missing the last day", got)
	}
	if strings.Contains(got, "April") {
		t.Errorf("Calendar = %q, spilled into the next month", got)
	}
}

func TestCalendarTwoMonths(t *testing.T) {
	got := Calendar([]csvt.Date{
		csvt.NewDate(2024, time.March, 30),
		csvt.NewDate(2024, time.April, 2),
	})
	if !strings.Contains(got, "March 2024") || !strings.Contains(got, "April 2024") {
		t.Errorf("Calendar = %q, want both straddled months", got)
	}
}

func TestCalendarYearBoundary(t *testing.T) {
	got := Calendar([]csvt.Date{
		csvt.NewDate(2023, time.December, 31),
		csvt.NewDate(2024, time.January, 1),
	})
	if !strings.Contains(got, "December 2023") || !strings.Contains(got, "January 2024") {
		t.Errorf("Calendar = %q, want both months across the year boundary", got)
	}
}

func TestCalendarEmpty(t *testing.T) {
	if got := Calendar(nil); got != "" {
		t.Errorf("Calendar(nil) = %q, want empty", got)
	}
}
