package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/jdoucet/csvt"
)

type sampleCmd struct {
	output string
	lines  int
	year   int
	month  int
	seed   int64
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "generate a random demo sheet" }
func (*sampleCmd) Usage() string {
	return `sample -o <demo.csv> [-n <lines>] [-year <y>] [-month <m>] [-seed <s>]

Write a random sheet shaped like a French bank export, to try the tool
without exposing a real statement. Import it with
'new -file demo.csv -sep ","'.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.StringVar(&c.output, "o", "", "file to write, stdout when empty")
	f.IntVar(&c.lines, "n", 20, "number of transaction lines")
	f.IntVar(&c.year, "year", now.Year(), "year of the transactions")
	f.IntVar(&c.month, "month", int(now.Month()), "month of the transactions")
	f.Int64Var(&c.seed, "seed", 0, "random seed, time-based when zero")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: month %d out of range\n", c.month)
		return subcommands.ExitUsageError
	}
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rows := csvt.SampleSheet(c.year, time.Month(c.month), c.lines, rand.New(rand.NewSource(seed)))

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}
	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sheet: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Wrote %d lines to %s.\n", c.lines, c.output)
	}
	return subcommands.ExitSuccess
}
