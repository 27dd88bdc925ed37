package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finquery/ipoworth"
	"github.com/finquery/ipoworth/cmd"
	"github.com/finquery/ipoworth/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// When invoked by the shell's completion hook this prints candidates
	// and exits; otherwise it is a no-op.
	completion().Complete("ipow")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI to the shell completion engine.
func completion() *complete.Command {
	tickers := predict.Set(ipoworth.Tickers())
	sources := predict.Set{"yahoo", "eodhd"}

	topics := predict.Set{"readme"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = predict.Set(all)
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"worth": {
				Flags: map[string]complete.Predictor{
					"t":      tickers,
					"source": sources,
				},
			},
			"tickers": {},
			"topic":   {Args: topics},
			"assist": {
				Flags: map[string]complete.Predictor{
					"t":      tickers,
					"source": sources,
				},
			},
		},
	}
}
