package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/jdoucet/csvt"
	"github.com/jdoucet/csvt/renderer"
	"github.com/jdoucet/csvt/tui"
)

type newCmd struct {
	file  string
	sep   string
	quote string
	start int
	save  string
	yes   bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "start a tagging session on a CSV export" }
func (*newCmd) Usage() string {
	return `new -file <export.csv> [-sep <c>] [-quote <c>] [-start <n>] [-save <state.csvt>]

Read a delimited export, interactively confirm how to parse it and which
column is which, then open the tagging session. Progress is saved after
every action; resume it later with 'resume'.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV export to tag")
	f.StringVar(&c.sep, "sep", config.Separator, "field separator")
	f.StringVar(&c.quote, "quote", config.Quote, "quote character")
	f.IntVar(&c.start, "start", 1, "index of the first data line, previous lines are kept as headers")
	f.StringVar(&c.save, "save", "", "state file to write (default: export name with .csvt suffix)")
	f.BoolVar(&c.yes, "yes", false, "accept the parsing parameters without confirmation")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" && f.NArg() > 0 {
		c.file = f.Arg(0)
	}
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: no export given, use -file")
		return subcommands.ExitUsageError
	}

	in := bufio.NewReader(os.Stdin)
	table, err := c.acquire(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	m, err := c.defineMapping(table, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error defining the mapping: %v\n", err)
		return subcommands.ExitFailure
	}

	state, err := csvt.Upgrade(table, c.start, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	path := c.save
	if path == "" {
		path = statePath(c.file)
	}
	if err := csvt.SaveState(path, state); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d lines (%d header), session saved to %s.\n", len(state.Data), len(state.Unparsed), path)

	if err := tui.Run(state, path, config.Currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(csvt.Summarize(state), config.Currency))
	return subcommands.ExitSuccess
}

// acquire reads the export and loops with the user until the parsing
// parameters look right. Each round re-reads the file, so a wrong
// separator can be fixed without restarting the command.
func (c *newCmd) acquire(in *bufio.Reader) ([][]string, error) {
	for {
		f, err := os.Open(c.file)
		if err != nil {
			return nil, err
		}
		table, err := csvt.ReadTable(f, csvt.ReadOptions{Comma: firstRune(c.sep), Quote: firstRune(c.quote)})
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("the file is empty")
		}
		if c.start < 0 {
			c.start = 0
		}
		if c.start >= len(table) {
			c.start = len(table) - 1
		}

		fmt.Printf("Parsing %s with separator %q and quote %q, data starting at line %d.\n", c.file, c.sep, c.quote, c.start)
		fmt.Println("First data line:")
		fmt.Print(renderRow(table[c.start]))
		if c.yes {
			return table, nil
		}

		answer, err := ask(in, "Does it look right? [yes/no] ")
		if err != nil {
			return nil, err
		}
		if yes(answer) {
			return table, nil
		}
		if s, err := ask(in, fmt.Sprintf("separator [%s]: ", c.sep)); err != nil {
			return nil, err
		} else if s != "" {
			c.sep = s
		}
		if q, err := ask(in, fmt.Sprintf("quote [%s]: ", c.quote)); err != nil {
			return nil, err
		} else if q != "" {
			c.quote = q
		}
		if n, err := ask(in, fmt.Sprintf("first data line [%d]: ", c.start)); err != nil {
			return nil, err
		} else if n != "" {
			if v, err := strconv.Atoi(n); err == nil {
				c.start = v
			}
		}
	}
}

// defineMapping asks, column by column, what each cell is: an info field,
// a date, one of the amount columns, or nothing. The header row, when
// there is one, provides the default names.
func (c *newCmd) defineMapping(table [][]string, in *bufio.Reader) (csvt.Mapping, error) {
	first := table[c.start]
	var header []string
	if c.start > 0 {
		header = table[c.start-1]
	}

	if csvt.IsSampleHeader(header) {
		answer, err := ask(in, "This looks like a csvt sample sheet. Use its builtin mapping? [yes/no] ")
		if err != nil {
			return csvt.Mapping{}, err
		}
		if yes(answer) {
			return csvt.SampleMapping(), nil
		}
	}

	fmt.Println("Describe each column: a name keeps it as an info field, '_' ignores it,")
	fmt.Println("and 'tag', 'debit', 'credit' assign the special roles.")
	m := csvt.NewMapping()
	for i, cell := range first {
		def := "_"
		if i < len(header) && header[i] != "" {
			def = header[i]
		}
		fmt.Printf("- column %d: %q\n", i, cell)
		name, err := ask(in, fmt.Sprintf("  name [%s]: ", def))
		if err != nil {
			return csvt.Mapping{}, err
		}
		if name == "" {
			name = def
		}
		switch name {
		case "_":
		case "tag":
			m.Tag = i
		case "debit":
			m.Debit = i
		case "credit":
			m.Credit = i
		default:
			typ, err := ask(in, "  type, s for text or d for date [s]: ")
			if err != nil {
				return csvt.Mapping{}, err
			}
			if typ == "d" {
				m.Dates[name] = i
			} else {
				m.Infos[name] = i
			}
		}
	}
	return m, nil
}
