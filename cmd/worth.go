package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finquery/ipoworth"
	"github.com/google/subcommands"
)

// worthCmd implements the "worth" command, the main valuation entry point.
type worthCmd struct {
	sourceFlags
	ticker string
	invest float64
	on     string
	plain  bool
}

func (*worthCmd) Name() string     { return "worth" }
func (*worthCmd) Synopsis() string { return "values an investment made at a company's IPO" }
func (*worthCmd) Usage() string {
	return `ipow worth -t <ticker> -i <amount> [-on <date>] [-source yahoo|eodhd] [-plain]

  Computes what the given amount, invested at the company's IPO, would be
  worth at the latest close, after all stock splits. Prints a short report
  and a summary sentence.

Usage Examples:
# What would $500 invested in Apple at its IPO be worth today?
$ ipow worth -t AAPL -i 500

# Only the summary sentence, using EODHD as the data source.
$ ipow worth -t MSFT -i 1000 -source eodhd -plain

`
}

func (c *worthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker symbol (see 'ipow tickers')")
	f.Float64Var(&c.invest, "i", 0, "investment amount in dollars at the IPO")
	f.StringVar(&c.on, "on", "", "valuation date, default today (format "+ipoworth.DateFormat+")")
	f.BoolVar(&c.plain, "plain", false, "print only the summary sentence")
	c.sourceFlags.SetFlags(f)
}

func (c *worthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quoter, err := c.quoter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	asOf := ipoworth.Today()
	if c.on != "" {
		asOf, err = ipoworth.ParseDate(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	v, err := ipoworth.ValuateOn(quoter, c.ticker, c.invest, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not value the investment: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.plain {
		fmt.Println(v.Summary())
		return subcommands.ExitSuccess
	}
	printMarkdown(v.Markdown())
	return subcommands.ExitSuccess
}
