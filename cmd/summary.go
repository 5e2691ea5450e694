package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jdoucet/csvt"
	"github.com/jdoucet/csvt/renderer"
)

type summaryCmd struct {
	state string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the per-tag totals of a session" }
func (*summaryCmd) Usage() string {
	return `summary -state <file.csvt>

Print item counts, credit, debit and net per tag, untagged lines grouped
under ` + csvt.UntaggedBucket + `. The session is not modified.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.state, "state", "", "state file to summarize")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Summary(csvt.Summarize(state), config.Currency))
	return subcommands.ExitSuccess
}
