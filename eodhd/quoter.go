// Package eodhd implements an ipoworth.Quoter backed by the EODHD.com API.
//
// EODHD requires an API token, passed in [Quoter.APIKey]. Responses are
// cached on disk with a daily expiry, so repeated valuations on the same day
// do not hit the API again.
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/finquery/ipoworth"
	"github.com/shopspring/decimal"
)

// Quoter fetches split histories and closing prices from EODHD.com.
type Quoter struct {
	APIKey string

	// BaseURL overrides the API host, mostly for tests. Empty means the
	// public https://eodhd.com endpoint.
	BaseURL string

	// Client overrides the HTTP client. Empty means a client with a
	// daily-expiring disk cache.
	Client *http.Client
}

var _ ipoworth.Quoter = Quoter{}

func (q Quoter) base() string {
	if q.BaseURL != "" {
		return q.BaseURL
	}
	return "https://eodhd.com"
}

func (q Quoter) client() *http.Client {
	if q.Client != nil {
		return q.Client
	}
	return newDailyCachingClient()
}

// apiTicker maps a registry ticker to EODHD's "SYMBOL.EXCHANGE" form. Every
// supported company trades on EODHD's virtual US exchange.
func apiTicker(ticker string) string { return ticker + ".US" }

// Splits returns the full split history for the ticker.
func (q Quoter) Splits(ticker string) ([]ipoworth.Split, error) {
	// https://eodhd.com/api/splits/AAPL.US?api_token=demo&fmt=json
	// [
	//   { "date": "2020-08-31", "split": "4.000000/1.000000" },
	addr := fmt.Sprintf("%s/api/splits/%s?fmt=json&api_token=%s", q.base(), url.PathEscape(apiTicker(ticker)), q.APIKey)

	type apiSplit struct {
		Date  ipoworth.Date `json:"date"`
		Split string        `json:"split"`
	}

	content := make([]apiSplit, 0)
	if err := jwget(q.client(), addr, &content); err != nil {
		return nil, err
	}

	splits := make([]ipoworth.Split, 0, len(content))
	for _, s := range content {
		ratio, err := parseRatio(s.Split)
		if err != nil {
			return nil, err
		}
		splits = append(splits, ipoworth.Split{Date: s.Date, Ratio: ratio})
	}
	return splits, nil
}

// parseRatio converts EODHD's "new/old" split string (e.g. "7.000000/1.000000")
// into a single multiplier.
func parseRatio(s string) (ipoworth.Quantity, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return ipoworth.Quantity{}, fmt.Errorf("invalid split format from API: %q", s)
	}
	num, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return ipoworth.Quantity{}, fmt.Errorf("invalid numerator in split %q: %w", s, err)
	}
	den, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return ipoworth.Quantity{}, fmt.Errorf("invalid denominator in split %q: %w", s, err)
	}
	if den.IsZero() {
		return ipoworth.Quantity{}, fmt.Errorf("zero denominator in split %q", s)
	}
	return ipoworth.Q(num.Div(den)), nil
}

// LatestClose returns the close of the most recent trading session.
func (q Quoter) LatestClose(ticker string) (ipoworth.Money, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json&from=...
	// [
	//   { "date": "2024-02-13", "open": 675.066, "close": 668.445, ... },
	//
	// Two weeks back always covers the most recent session, holidays included.
	from := ipoworth.Today().Add(-14)
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s", q.base(), url.PathEscape(apiTicker(ticker)), q.APIKey, from)

	type eod struct {
		Date  ipoworth.Date   `json:"date"`
		Close decimal.Decimal `json:"close"`
	}

	content := make([]eod, 0)
	if err := jwget(q.client(), addr, &content); err != nil {
		return ipoworth.Money{}, err
	}
	if len(content) == 0 {
		return ipoworth.Money{}, fmt.Errorf("no close reported for %s since %s", apiTicker(ticker), from)
	}
	// The response is chronological, the last entry is the latest session.
	return ipoworth.M(content[len(content)-1].Close, "USD"), nil
}
