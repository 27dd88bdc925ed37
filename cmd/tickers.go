package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/finquery/ipoworth"
	"github.com/google/subcommands"
)

// tickersCmd lists the supported companies and their IPO terms.
type tickersCmd struct{}

func (*tickersCmd) Name() string     { return "tickers" }
func (*tickersCmd) Synopsis() string { return "lists the supported tickers and their IPO terms" }
func (*tickersCmd) Usage() string {
	return `ipow tickers

  Lists the supported ticker symbols with company name, IPO date and offer
  price. Only these tickers can be valued.

`
}

func (*tickersCmd) SetFlags(_ *flag.FlagSet) {}

func (*tickersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("# Supported tickers\n\n")
	b.WriteString("| Ticker | Company | IPO date | Offer price |\n")
	b.WriteString("|---|---|---|---:|\n")
	for _, ticker := range ipoworth.Tickers() {
		rec, _ := ipoworth.Lookup(ticker)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", ticker, rec.Company, rec.Date, rec.Price)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
