package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jdoucet/csvt"
	"github.com/jdoucet/csvt/renderer"
	"github.com/jdoucet/csvt/tui"
)

type resumeCmd struct {
	state string
}

func (*resumeCmd) Name() string     { return "resume" }
func (*resumeCmd) Synopsis() string { return "resume a saved tagging session" }
func (*resumeCmd) Usage() string {
	return `resume -state <file.csvt>

Reopen a saved session exactly where it was left: same lines, same tags,
same cursor.
`
}

func (c *resumeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.state, "state", "", "state file to resume")
}

func (c *resumeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(state.Data) == 0 {
		fmt.Println("The sheet is empty, nothing to tag.")
		return subcommands.ExitSuccess
	}

	if err := tui.Run(state, c.state, config.Currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(csvt.Summarize(state), config.Currency))
	return subcommands.ExitSuccess
}
