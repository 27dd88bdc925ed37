package ipoworth

import (
	"errors"
	"math"
	"testing"
	"time"
)

// stubQuoter implements Quoter from canned data, and records the calls made
// so tests can check that validation happens before any fetch.
type stubQuoter struct {
	splits    []Split
	close     Money
	splitsErr error
	closeErr  error
	calls     []string
}

func (q *stubQuoter) Splits(ticker string) ([]Split, error) {
	q.calls = append(q.calls, "splits")
	return q.splits, q.splitsErr
}

func (q *stubQuoter) LatestClose(ticker string) (Money, error) {
	q.calls = append(q.calls, "close")
	return q.close, q.closeErr
}

// aaplSplits is Apple's real split history: three 2-for-1, one 7-for-1, one
// 4-for-1, for a cumulative multiplier of 224.
func aaplSplits() []Split {
	return []Split{
		{Date: NewDate(1987, time.June, 16), Ratio: Q(2)},
		{Date: NewDate(2000, time.June, 21), Ratio: Q(2)},
		{Date: NewDate(2005, time.February, 28), Ratio: Q(2)},
		{Date: NewDate(2014, time.June, 9), Ratio: Q(7)},
		{Date: NewDate(2020, time.August, 31), Ratio: Q(4)},
	}
}

func TestValuateOn(t *testing.T) {
	// $500 at the Apple IPO buys floor(500/22) = 22 shares. With the full
	// split history (x224) and a close of $150.00 the position is 4928
	// shares worth $739,200.00, a 1477.4x-1 total return.
	asOf := NewDate(2020, time.December, 12)
	q := &stubQuoter{splits: aaplSplits(), close: M(150.00, "USD")}

	v, err := ValuateOn(q, "AAPL", 500, asOf)
	if err != nil {
		t.Fatalf("ValuateOn() unexpected error = %v", err)
	}

	if got, want := v.SharesAtIPO(), Q(22); !got.Equal(want) {
		t.Errorf("SharesAtIPO() = %s, want %s", got, want)
	}
	if got, want := v.SplitMultiplier(), Q(224); !got.Equal(want) {
		t.Errorf("SplitMultiplier() = %s, want %s", got, want)
	}
	if got, want := v.AdjustedShares(), Q(4928); !got.Equal(want) {
		t.Errorf("AdjustedShares() = %s, want %s", got, want)
	}
	if got, want := v.PresentValue(), M(739200.00, "USD"); !got.Equal(want) {
		t.Errorf("PresentValue() = %s, want %s", got, want)
	}
	if got, want := v.TotalReturn(), Percent(147740); !got.Equal(want) {
		t.Errorf("TotalReturn() = %s, want %s", got, want)
	}

	years := float64(asOf.Sub(NewDate(1980, time.December, 12))) / 365
	if got := v.Years(); got != years {
		t.Errorf("Years() = %v, want %v", got, years)
	}
	want := NewPercent(math.Pow(739200.0/500.0, 1/years) - 1)
	if got := v.AnnualizedReturn(); !got.Equal(want) {
		t.Errorf("AnnualizedReturn() = %s, want %s", got, want)
	}
}

func TestValuateOn_Summary(t *testing.T) {
	asOf := NewDate(2020, time.December, 12)
	q := &stubQuoter{splits: aaplSplits(), close: M(150.00, "USD")}

	v, err := ValuateOn(q, "AAPL", 500, asOf)
	if err != nil {
		t.Fatalf("ValuateOn() unexpected error = %v", err)
	}

	want := "If you had invested $500.00 in Apple at its IPO in 1980, your investment would be worth $739,200.00 today, a total return on investment of 147740.00% or " +
		v.AnnualizedReturn().String() + " per annum."
	if got := v.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestValuateOn_InvalidAmount(t *testing.T) {
	for _, ticker := range Tickers() {
		for _, amount := range []float64{0, -1, -500.25} {
			q := &stubQuoter{}
			_, err := ValuateOn(q, ticker, amount, Today())
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ValuateOn(%s, %v) error = %v, want ErrInvalidAmount", ticker, amount, err)
			}
			if len(q.calls) != 0 {
				t.Errorf("ValuateOn(%s, %v) fetched %v before validation", ticker, amount, q.calls)
			}
		}
	}
}

func TestValuateOn_UnsupportedTicker(t *testing.T) {
	for _, ticker := range []string{"GOOG", "aapl", "", "AAPL.US"} {
		q := &stubQuoter{}
		_, err := ValuateOn(q, ticker, 500, Today())
		if !errors.Is(err, ErrUnsupportedTicker) {
			t.Errorf("ValuateOn(%q) error = %v, want ErrUnsupportedTicker", ticker, err)
		}
		if len(q.calls) != 0 {
			t.Errorf("ValuateOn(%q) fetched %v before validation", ticker, q.calls)
		}
	}
}

func TestValuateOn_FloorTruncation(t *testing.T) {
	// No splits, close equal to the offer price, exactly one year held:
	// both returns reduce to the loss from rounding down to whole shares,
	// floor(500/22)*22/500 - 1 = -3.2%.
	rec, _ := Lookup("AAPL")
	q := &stubQuoter{close: rec.Price}

	v, err := ValuateOn(q, "AAPL", 500, rec.Date.Add(365))
	if err != nil {
		t.Fatalf("ValuateOn() unexpected error = %v", err)
	}

	want := NewPercent(22*22.0/500 - 1)
	if got := v.TotalReturn(); !got.Equal(want) {
		t.Errorf("TotalReturn() = %s, want %s", got, want)
	}
	if got := v.AnnualizedReturn(); !got.Equal(want) {
		t.Errorf("AnnualizedReturn() = %s, want %s", got, want)
	}
}

func TestValuateOn_ZeroHoldingPeriod(t *testing.T) {
	rec, _ := Lookup("NFLX")
	q := &stubQuoter{close: rec.Price}

	_, err := ValuateOn(q, "NFLX", 500, rec.Date)
	if !errors.Is(err, ErrUndefinedAnnualizedReturn) {
		t.Errorf("ValuateOn() on the IPO date error = %v, want ErrUndefinedAnnualizedReturn", err)
	}
}

func TestValuateOn_ProviderFailure(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name   string
		quoter *stubQuoter
		op     string
	}{
		{"splits fetch fails", &stubQuoter{splitsErr: cause}, "splits"},
		{"close fetch fails", &stubQuoter{closeErr: cause}, "close"},
		{"close is zero", &stubQuoter{close: M(0, "USD")}, "close"},
		{"close is negative", &stubQuoter{close: M(-1.5, "USD")}, "close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValuateOn(tt.quoter, "MSFT", 500, Today())
			var perr *ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("ValuateOn() error = %v, want *ProviderError", err)
			}
			if perr.Op != tt.op {
				t.Errorf("ProviderError.Op = %q, want %q", perr.Op, tt.op)
			}
			if perr.Ticker != "MSFT" {
				t.Errorf("ProviderError.Ticker = %q, want %q", perr.Ticker, "MSFT")
			}
			if tt.quoter.splitsErr != nil && !errors.Is(err, cause) {
				t.Errorf("ValuateOn() error does not wrap the cause: %v", err)
			}
		})
	}
}

func TestValuation_AccessorsAreIdempotent(t *testing.T) {
	q := &stubQuoter{splits: aaplSplits(), close: M(150.00, "USD")}
	v, err := ValuateOn(q, "AAPL", 500, NewDate(2020, time.December, 12))
	if err != nil {
		t.Fatalf("ValuateOn() unexpected error = %v", err)
	}

	first := v.Summary()
	for i := 0; i < 3; i++ {
		if got := v.Summary(); got != first {
			t.Fatalf("Summary() changed between calls: %q != %q", got, first)
		}
		if got := v.PresentValue(); !got.Equal(M(739200.00, "USD")) {
			t.Fatalf("PresentValue() changed between calls: %s", got)
		}
		if got := v.TotalReturn(); !got.Equal(Percent(147740)) {
			t.Fatalf("TotalReturn() changed between calls: %s", got)
		}
	}
}
