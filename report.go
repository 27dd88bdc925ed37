package ipoworth

import (
	"fmt"
	"strings"
)

// Markdown renders the valuation as a small markdown report, suitable for
// terminal rendering.
func (v *Valuation) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s invested in %s (%s)\n\n", v.investment, v.record.Company, v.ticker)
	fmt.Fprintf(&b, "| | |\n")
	fmt.Fprintf(&b, "|---|---:|\n")
	fmt.Fprintf(&b, "| IPO date | %s |\n", v.record.Date)
	fmt.Fprintf(&b, "| Offer price | %s |\n", v.record.Price)
	fmt.Fprintf(&b, "| Shares at IPO | %s |\n", v.sharesAtIPO)
	fmt.Fprintf(&b, "| Split multiplier | %s |\n", v.multiplier)
	fmt.Fprintf(&b, "| Shares today | %s |\n", v.adjusted)
	fmt.Fprintf(&b, "| Latest close | %s |\n", v.latestClose)
	fmt.Fprintf(&b, "| Present value | %s |\n", v.present)
	fmt.Fprintf(&b, "| Total return | %s |\n", v.total.SignedString())
	fmt.Fprintf(&b, "| Annualized | %s over %.1f years |\n", v.annualized.SignedString(), v.years)
	fmt.Fprintf(&b, "\n%s\n", v.summary)
	return b.String()
}
