// Command csvt tags the rows of a bank-statement CSV export and keeps the
// progress in a state file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jdoucet/csvt/cmd"
)

func main() {
	// Shell completion runs, and exits, before anything else when the
	// shell asks for it.
	complete.Complete("csvt", completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	stateFiles := map[string]complete.Predictor{"state": predict.Files("*.csvt")}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"new": {Flags: map[string]complete.Predictor{
				"file":  predict.Files("*.csv"),
				"save":  predict.Files("*.csvt"),
				"sep":   predict.Nothing,
				"quote": predict.Nothing,
				"start": predict.Nothing,
				"yes":   predict.Nothing,
			}},
			"resume":   {Flags: stateFiles},
			"summary":  {Flags: stateFiles},
			"validate": {Flags: stateFiles},
			"sample": {Flags: map[string]complete.Predictor{
				"o":     predict.Files("*.csv"),
				"n":     predict.Nothing,
				"year":  predict.Nothing,
				"month": predict.Nothing,
				"seed":  predict.Nothing,
			}},
			"suggest": {Flags: map[string]complete.Predictor{
				"state": predict.Files("*.csvt"),
				"model": predict.Nothing,
				"n":     predict.Nothing,
			}},
			"topic": {},
		},
	}
}
