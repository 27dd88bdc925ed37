package ipoworth

// Split records a single stock split event.
type Split struct {
	Date  Date
	Ratio Quantity // new shares per old share, e.g. 4 for a 4-for-1 split
}

// Quoter is the market data capability a valuation consumes: the full split
// history of a ticker and its latest closing price.
//
// Both calls are independent reads; a Quoter may be called in any order.
// Implementations should return an error rather than a zero value when the
// upstream service is unavailable.
type Quoter interface {
	// Splits returns every recorded split for the ticker, empty if none.
	Splits(ticker string) ([]Split, error)
	// LatestClose returns the closing price of the most recent trading session.
	LatestClose(ticker string) (Money, error)
}

// SplitMultiplier folds a split history into the cumulative multiplier that
// converts an original share count into its present-day equivalent.
//
// Splits effective after asOf are excluded: an announced future split has
// not yet changed the share count. Splits with a zero date are included, so
// providers that report bare ratios still work. An empty history yields 1.
func SplitMultiplier(splits []Split, asOf Date) Quantity {
	m := Q(1)
	for _, s := range splits {
		if !s.Date.IsZero() && s.Date.After(asOf) {
			continue
		}
		m = m.Mul(s.Ratio)
	}
	return m
}
