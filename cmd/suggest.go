package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/jdoucet/csvt"
	"github.com/jdoucet/csvt/suggest"
)

type suggestCmd struct {
	state string
	model string
	limit int
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "propose tags for untagged lines" }
func (*suggestCmd) Usage() string {
	return `suggest -state <file.csvt> [-model <name>] [-n <lines>]

Ask a Gemini model for a tag per untagged line, reusing the tags already
in the sheet when they fit. Suggestions are printed, never applied: the
state file is not modified. Requires GEMINI_API_KEY.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.state, "state", "", "state file to read")
	f.StringVar(&c.model, "model", config.Model, "Gemini model to ask")
	f.IntVar(&c.limit, "n", 10, "maximum number of lines to suggest for")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.state == "" && f.NArg() > 0 {
		c.state = f.Arg(0)
	}
	if c.state == "" {
		fmt.Fprintln(os.Stderr, "Error: no state file given, use -state")
		return subcommands.ExitUsageError
	}

	state, err := loadState(c.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	s := suggest.New(c.model)
	if err := s.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the suggestion chat:", err)
		return subcommands.ExitFailure
	}

	known := state.Tags()
	var b strings.Builder
	fmt.Fprintf(&b, "# Suggestions\n\n| Line | Label | Suggested tag |\n|---|---|---|\n")
	n := 0
	for i := range state.Data {
		l := &state.Data[i]
		if l.Tagged() {
			continue
		}
		if n >= c.limit {
			break
		}
		tag, err := s.Suggest(ctx, l, known)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error on line %d: %v\n", i, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, label(l), tag)
		n++
	}
	if n == 0 {
		fmt.Println("Every line is tagged, nothing to suggest.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// label picks a short human description of a line for the report: the
// first non-empty info field, by field name.
func label(l *csvt.Line) string {
	names := make([]string, 0, len(l.Infos))
	for name := range l.Infos {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := l.Infos[name]; v != "" {
			return v
		}
	}
	return strings.Join(l.RawContent, " ")
}
