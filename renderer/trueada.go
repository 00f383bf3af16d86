package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// TrueADAMarkdown renders the dividend-adjusted cost basis report: per
// holding the true ADA and the current price's distance from it, plus the
// portfolio-level basis improvement.
func TrueADAMarkdown(valuations []tracker.Valuation, summary tracker.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# True Adjusted Dividend Average\n\n")

	if len(valuations) == 0 {
		fmt.Fprintln(&b, "Add a holding first to calculate True ADA.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Shares | Total Invested | Dividends | True ADA | Current Price | Return vs True ADA |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, v := range valuations {
		price, priceOK := v.Price()
		ada, adaOK := v.TrueADA()
		vs, vsOK := v.ReturnVsTrueADA()
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			v.Ticker,
			v.Shares.Fixed(),
			v.Invested,
			v.Dividends,
			money(ada, adaOK),
			money(price, priceOK),
			signedPercent(vs, vsOK),
		)
	}

	avg, avgOK := summary.AvgCost()
	ada, adaOK := summary.TrueADA()
	improvement, impOK := summary.AdjustedBasisImprovement()
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "- Total Dividends Collected: %s\n", summary.TotalDividends)
	fmt.Fprintf(&b, "- Unadjusted Avg Cost (Portfolio): %s\n", money(avg, avgOK))
	fmt.Fprintf(&b, "- True ADA (Portfolio): %s\n", money(ada, adaOK))
	fmt.Fprintf(&b, "- Adjusted Basis Improvement: %s\n", percent(improvement, impOK))
	return b.String()
}
