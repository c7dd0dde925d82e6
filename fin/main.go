package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete returns
// immediately when the process is not running as a completer.
func completion(commands []subcommands.Command) {
	sub := make(map[string]*complete.Command, len(commands))
	for _, c := range commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"accounts-file": predict.Files("*.csv"),
			"ledger-file":   predict.Files("*.csv"),
			"extended":      predict.Nothing,
			"home":          predict.Set{"CNY", "USD", "EUR"},
			"u":             predict.Something,
		},
	}
	root.Complete("fin")
}

func main() {
	completion(cmd.Commands)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
