package ipoworth

import (
	"errors"
	"fmt"
)

// Validation errors. They are reported before any market data is fetched,
// so the caller can fix the input and try again.
var (
	// ErrUnsupportedTicker reports a ticker absent from the IPO registry.
	ErrUnsupportedTicker = errors.New("unsupported ticker")

	// ErrInvalidAmount reports a zero or negative investment amount.
	ErrInvalidAmount = errors.New("investment amount must be positive")

	// ErrUndefinedAnnualizedReturn reports a holding period of zero days,
	// for which no yearly compounding rate exists.
	ErrUndefinedAnnualizedReturn = errors.New("annualized return is undefined for a zero holding period")
)

// ProviderError reports that the market data provider failed or returned
// unusable data. It wraps the cause, so callers can tell provider failures
// apart from validation errors with errors.As.
type ProviderError struct {
	Ticker string
	Op     string // "splits" or "close"
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("market data provider: %s for %s: %v", e.Op, e.Ticker, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
