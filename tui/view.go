package tui

import (
	"strings"

	"github.com/jdoucet/csvt"
	"github.com/jdoucet/csvt/renderer"
)

const helpText = `Available actions:
  [<]         previous item
  [>]         next     item (empty input works too)
  [«]         previous untagged item
  [»]         next     untagged item
  [?]         toggle   this help
  [q / quit]  stop tagging
  [anything]  assign it as the tag of the current item

NOTE: <, >, «, », ?, q and quit cannot be used as tags.`

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("csvt tagging session"))
	b.WriteString("\n\n")
	b.WriteString(renderer.Progress(m.state))
	b.WriteString("\n\n")

	if len(m.state.Data) > 0 {
		l := m.state.Current()
		dates := make([]csvt.Date, 0, len(l.Dates))
		for _, d := range l.Dates {
			dates = append(dates, d)
		}
		if cal := renderer.Calendar(dates); cal != "" {
			b.WriteString(cal)
			b.WriteString("\n")
		}
		b.WriteString(renderer.Details(l))
		b.WriteString(renderer.Balance(l, m.currency))
		b.WriteString("\n")
		b.WriteString(renderer.Status(l))
		b.WriteString("\n\n")
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render(helpText))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Action: "))
	b.WriteString(string(m.input))
	b.WriteString("▌")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}
