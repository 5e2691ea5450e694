// Package cmd implements the csvt subcommands.
package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/jdoucet/csvt"
)

// Commands lists the registered subcommands, in help order.
var Commands = []subcommands.Command{
	&newCmd{},
	&resumeCmd{},
	&summaryCmd{},
	&validateCmd{},
	&sampleCmd{},
	&suggestCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown to the terminal. Rendering problems fall
// back to the raw text rather than failing the command.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// loadState reads a state file, warning when it was written by another
// version of the program. Only structural problems are errors.
func loadState(path string) (*csvt.SheetState, error) {
	s, err := csvt.LoadState(path)
	if err != nil {
		return nil, err
	}
	if !s.CompatibleVersion() {
		log.Printf("warning: %s was written by version %s, this program is version %s", path, s.Version, csvt.CurrentVersion)
	}
	return s, nil
}

// statePath returns the default state file for an export: same name, with
// the .csvt suffix.
func statePath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".csvt"
}

// firstRune returns the first rune of a flag value, 0 when empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
