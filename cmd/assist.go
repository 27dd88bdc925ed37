package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finquery/ipoworth"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

// assistCmd asks Gemini to put a valuation into words.
type assistCmd struct {
	sourceFlags
	ticker string
	invest float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "explain a valuation with the AI assistant" }
func (*assistCmd) Usage() string {
	return `ipow assist -t <ticker> -i <amount> [question]

  Computes the valuation and asks Gemini to explain it, answering the given
  question if any. Requires Gemini credentials in the environment (see the
  GEMINI_API_KEY or GOOGLE_API_KEY environment variables).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker symbol (see 'ipow tickers')")
	f.Float64Var(&c.invest, "i", 0, "investment amount in dollars at the IPO")
	c.sourceFlags.SetFlags(f)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quoter, err := c.quoter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, err := ipoworth.Valuate(quoter, c.ticker, c.invest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not value the investment: %v\n", err)
		return subcommands.ExitFailure
	}

	question := strings.TrimSpace(strings.Join(f.Args(), " "))
	if question == "" {
		question = "Explain this result to a novice investor, in a short paragraph."
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf(
		"Here is a hypothetical IPO investment valuation, computed from real split-adjusted market data:\n\n%s\n\n%s",
		v.Summary(), question)

	resp, err := client.Models.GenerateContent(ctx, assistModel, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
