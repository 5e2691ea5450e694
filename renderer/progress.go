package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jdoucet/csvt"
)

// Progress returns the tagging progress header and the one-character-per-
// line strip: '#' for a tagged line, '_' for an untagged one, brackets
// around the cursor.
func Progress(s *csvt.SheetState) string {
	var strip strings.Builder
	for i, l := range s.Data {
		c := "_"
		if l.Tagged() {
			c = "#"
		}
		if i == s.Cursor {
			c = "[" + c + "]"
		}
		strip.WriteString(c)
	}
	return fmt.Sprintf("N: %d / %d. %d items skipped.\n%s",
		s.Tagged(), len(s.Data), s.Skipped(), strip.String())
}

// Details lists the info fields of a line, one per row, in a stable
// alphabetical order.
func Details(l *csvt.Line) string {
	names := make([]string, 0, len(l.Infos))
	for name := range l.Infos {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  [%s]  %s\n", name, l.Infos[name])
	}
	return b.String()
}

// Balance prints the credit, the debit and the net of a line.
func Balance(l *csvt.Line, currency string) string {
	return fmt.Sprintf("  %s / %s  = %s",
		SignedAmount(l.Credit, currency),
		SignedAmount(l.Debit.Neg(), currency),
		Amount(l.Balance(), currency))
}

// Status prints the tag of a line, or the untagged bucket name.
func Status(l *csvt.Line) string {
	tag := l.Tag
	if tag == "" {
		tag = csvt.UntaggedBucket
	}
	return "  [tag]  " + tag
}
