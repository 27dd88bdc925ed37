package ipoworth

import (
	"sort"
	"time"
)

// IPORecord holds the terms of a company's initial public offering: who it
// was, when it listed, and at what offer price.
type IPORecord struct {
	Company string
	Date    Date
	Price   Money // offer price per share
}

// ipoRegistry lists the supported tickers. Dates and offer prices are hard
// inputs from the companies' investor relations pages, not fetched.
var ipoRegistry = map[string]IPORecord{
	"AAPL": {Company: "Apple", Date: NewDate(1980, time.December, 12), Price: M(22.00, "USD")},
	"AMZN": {Company: "Amazon", Date: NewDate(1997, time.May, 15), Price: M(18.00, "USD")},
	"NFLX": {Company: "Netflix", Date: NewDate(2001, time.May, 23), Price: M(15.00, "USD")},
	"MSFT": {Company: "Microsoft", Date: NewDate(1986, time.March, 13), Price: M(21.00, "USD")},
}

// Lookup returns the IPO record for a ticker, and whether it is supported.
func Lookup(ticker string) (IPORecord, bool) {
	rec, ok := ipoRegistry[ticker]
	return rec, ok
}

// Tickers returns the supported ticker symbols in alphabetical order.
func Tickers() []string {
	tickers := make([]string, 0, len(ipoRegistry))
	for t := range ipoRegistry {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}
