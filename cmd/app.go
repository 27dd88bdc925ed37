// Package cmd implements the CLI application to value IPO investments.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/finquery/ipoworth"
	"github.com/finquery/ipoworth/eodhd"
	"github.com/finquery/ipoworth/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&worthCmd{}, "valuation")
	c.Register(&tickersCmd{}, "valuation")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

const eodhdKeyEnv = "EODHD_API_KEY"

// sourceFlags holds the flags shared by every command that fetches market data.
type sourceFlags struct {
	source      string
	eodhdAPIKey string
}

func (s *sourceFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.source, "source", "yahoo", "market data source, \"yahoo\" or \"eodhd\"")
	f.StringVar(&s.eodhdAPIKey, "eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the "+eodhdKeyEnv+" environment variable. You can get one at https://eodhd.com/")
}

// quoter returns the selected market data source.
func (s *sourceFlags) quoter() (ipoworth.Quoter, error) {
	switch s.source {
	case "", "yahoo":
		return yahoo.Quoter{}, nil
	case "eodhd":
		key := s.eodhdAPIKey
		if key == "" {
			key = os.Getenv(eodhdKeyEnv)
		}
		if key == "" {
			return nil, errors.New("EODHD API key is not set. Use -eodhd-api-key flag or " + eodhdKeyEnv + " environment variable")
		}
		return eodhd.Quoter{APIKey: key}, nil
	default:
		return nil, fmt.Errorf("unknown market data source %q (want \"yahoo\" or \"eodhd\")", s.source)
	}
}
