// Package yahoo implements an ipoworth.Quoter backed by the Yahoo Finance
// chart API. No API key is required.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finquery/ipoworth"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 232.14,
	                    ...
	                },
	                "events": {
	                    "splits": {
	                        "1598880600": {
	                            "date": 1598880600,
	                            "numerator": 4,
	                            "denominator": 1,
	                            "splitRatio": "4:1"
	                        }
	                    }
	                },
*/

// Quoter fetches split histories and closing prices from Yahoo Finance.
type Quoter struct {
	// BaseURL overrides the API host, mostly for tests. Empty means the
	// public https://query1.finance.yahoo.com endpoint.
	BaseURL string

	// Client overrides the HTTP client. Empty means http.DefaultClient.
	Client *http.Client
}

var _ ipoworth.Quoter = Quoter{}

func (q Quoter) base() string {
	if q.BaseURL != "" {
		return q.BaseURL
	}
	return "https://query1.finance.yahoo.com"
}

func (q Quoter) client() *http.Client {
	if q.Client != nil {
		return q.Client
	}
	return http.DefaultClient
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (q Quoter) jwget(addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects clients that do not look like a browser.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ipoworth)")
	resp, err := q.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// number extracts a float64 at a jsonpath from a decoded JSON document.
func number(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return val, nil
}

// LatestClose returns the price of the most recent trading session.
func (q Quoter) LatestClose(ticker string) (ipoworth.Money, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", q.base(), url.PathEscape(ticker))

	var jobj any
	if err := q.jwget(addr, &jobj); err != nil {
		return ipoworth.Money{}, err
	}

	price, err := number(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return ipoworth.Money{}, fmt.Errorf("cannot read latest close for %q: %w", ticker, err)
	}

	cur := "USD"
	if jval, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if s, ok := jval.(string); ok && s != "" {
			cur = s
		}
	}
	return ipoworth.M(price, cur), nil
}

// Splits returns the full split history for the ticker, oldest first.
func (q Quoter) Splits(ticker string) ([]ipoworth.Split, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=max&interval=1mo&events=splits", q.base(), url.PathEscape(ticker))

	var jobj any
	if err := q.jwget(addr, &jobj); err != nil {
		return nil, err
	}

	// The result must be there even for a stock that never split.
	if _, err := jsonpath.Get("$.chart.result[0].meta", jobj); err != nil {
		return nil, fmt.Errorf("unexpected chart payload for %q: %w", ticker, err)
	}

	jval, err := jsonpath.Get("$.chart.result[0].events.splits", jobj)
	if err != nil {
		// No events section at all: the stock never split.
		return nil, nil
	}
	events, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("split events for %q are not an object", ticker)
	}

	splits := make([]ipoworth.Split, 0, len(events))
	for _, jev := range events {
		ev, ok := jev.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid split event for %q: %v", ticker, jev)
		}
		num, _ := ev["numerator"].(float64)
		den, _ := ev["denominator"].(float64)
		if num <= 0 || den <= 0 {
			return nil, fmt.Errorf("invalid split ratio for %q: %v", ticker, jev)
		}

		var on ipoworth.Date
		if ts, ok := ev["date"].(float64); ok && ts > 0 {
			on = ipoworth.NewDate(time.Unix(int64(ts), 0).UTC().Date())
		}
		splits = append(splits, ipoworth.Split{Date: on, Ratio: ipoworth.Q(num).Div(ipoworth.Q(den))})
	}

	// events is a map keyed by timestamp, iteration order is random.
	sort.Slice(splits, func(i, j int) bool { return splits[i].Date.Before(splits[j].Date) })
	return splits, nil
}
