package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct {
	state string
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check a state file without opening it" }
func (*validateCmd) Usage() string {
	return `validate -state <file.csvt>

Decode a state file and check its invariants: version present, cursor in
range, every line consistent with the mapping. A version mismatch is
reported but is not a failure.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.state, "state", "", "state file to check")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Printf("%s is valid: version %s, %d lines, %d tagged, cursor at %d.\n",
		c.state, state.Version, len(state.Data), state.Tagged(), state.Cursor)
	return subcommands.ExitSuccess
}
