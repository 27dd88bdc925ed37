package ipoworth

import (
	"fmt"
	"math"
)

// Valuation is the result of valuing one hypothetical IPO investment.
//
// It is a frozen snapshot: every figure is derived once, at construction,
// from the registry and a single round of quoter calls. Accessors are pure;
// to get fresher numbers, build a new Valuation.
type Valuation struct {
	ticker     string
	record     IPORecord
	investment Money

	sharesAtIPO Quantity // whole shares bought at the offer price
	multiplier  Quantity // cumulative split multiplier
	adjusted    Quantity // sharesAtIPO scaled by the multiplier
	latestClose Money
	present     Money

	years      float64 // holding period, calendar days / 365
	total      Percent
	annualized Percent
	summary    string
}

// Valuate values an investment of amount dollars made at ticker's IPO,
// as of today. Market data is read from q.
func Valuate(q Quoter, ticker string, amount float64) (*Valuation, error) {
	return ValuateOn(q, ticker, amount, Today())
}

// ValuateOn is Valuate with an explicit valuation date. The date bounds the
// holding period and the split history; the closing price is still the
// latest one the quoter reports.
func ValuateOn(q Quoter, ticker string, amount float64, asOf Date) (*Valuation, error) {
	// Validate before touching the network.
	record, ok := Lookup(ticker)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTicker, ticker)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}

	investment := M(amount, record.Price.Currency())
	// Fractional shares are not purchasable, round down to whole shares.
	sharesAtIPO := investment.DivPrice(record.Price).Floor()

	splits, err := q.Splits(ticker)
	if err != nil {
		return nil, &ProviderError{Ticker: ticker, Op: "splits", Err: err}
	}
	multiplier := SplitMultiplier(splits, asOf)

	latestClose, err := q.LatestClose(ticker)
	if err != nil {
		return nil, &ProviderError{Ticker: ticker, Op: "close", Err: err}
	}
	if !latestClose.IsPositive() {
		return nil, &ProviderError{Ticker: ticker, Op: "close", Err: fmt.Errorf("unusable close %s", latestClose)}
	}

	adjusted := sharesAtIPO.Mul(multiplier)
	present := latestClose.Mul(adjusted)

	// Money stays exact up to here; rates are float territory.
	growth := present.AsFloat() / investment.AsFloat()

	days := asOf.Sub(record.Date)
	if days <= 0 {
		return nil, fmt.Errorf("%w: %s is not after the IPO date %s", ErrUndefinedAnnualizedReturn, asOf, record.Date)
	}
	years := float64(days) / 365

	v := &Valuation{
		ticker:      ticker,
		record:      record,
		investment:  investment,
		sharesAtIPO: sharesAtIPO,
		multiplier:  multiplier,
		adjusted:    adjusted,
		latestClose: latestClose,
		present:     present,
		years:       years,
		total:       NewPercent(growth - 1),
		annualized:  NewPercent(math.Pow(growth, 1/years) - 1),
	}
	v.summary = fmt.Sprintf(
		"If you had invested %s in %s at its IPO in %d, your investment would be worth %s today, a total return on investment of %s or %s per annum.",
		v.investment, v.record.Company, v.record.Date.Year(), v.present, v.total, v.annualized)
	return v, nil
}

// Ticker returns the ticker symbol the valuation was built for.
func (v *Valuation) Ticker() string { return v.ticker }

// Record returns the IPO record the valuation was built from.
func (v *Valuation) Record() IPORecord { return v.record }

// Investment returns the amount hypothetically invested at the IPO.
func (v *Valuation) Investment() Money { return v.investment }

// SharesAtIPO returns the whole number of shares bought at the offer price.
func (v *Valuation) SharesAtIPO() Quantity { return v.sharesAtIPO }

// SplitMultiplier returns the cumulative split multiplier applied since the IPO.
func (v *Valuation) SplitMultiplier() Quantity { return v.multiplier }

// AdjustedShares returns the present-day equivalent share count.
func (v *Valuation) AdjustedShares() Quantity { return v.adjusted }

// LatestClose returns the closing price the position was valued at.
func (v *Valuation) LatestClose() Money { return v.latestClose }

// PresentValue returns what the position is worth at the latest close.
func (v *Valuation) PresentValue() Money { return v.present }

// TotalReturn returns the overall gain or loss relative to the investment.
func (v *Valuation) TotalReturn() Percent { return v.total }

// AnnualizedReturn returns the constant yearly compounding rate that would
// produce the same total return over the holding period.
func (v *Valuation) AnnualizedReturn() Percent { return v.annualized }

// Years returns the holding period in years (calendar days over 365).
func (v *Valuation) Years() float64 { return v.years }

// Summary returns the one-sentence human readable conclusion.
func (v *Valuation) Summary() string { return v.summary }
