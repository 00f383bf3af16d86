package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// PortfolioMarkdown renders the main portfolio table and its totals.
func PortfolioMarkdown(valuations []tracker.Valuation, summary tracker.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")

	if len(valuations) == 0 {
		fmt.Fprintln(&b, "No holdings yet. Add your first position with `ivt add`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Name | Payout | Shares | Purchase Price | Total Invested | Price Now | Current Value | Dividends | True ADA | Overall Return | Return % |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, v := range valuations {
		price, priceOK := v.Price()
		mv, mvOK := v.MarketValue()
		ada, adaOK := v.TrueADA()
		pct, pctOK := v.OverallReturnPct()
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			v.Ticker,
			v.Name,
			v.Payout,
			v.Shares.Fixed(),
			optMoney(v.PurchasePrice),
			v.Invested,
			money(price, priceOK),
			money(mv, mvOK),
			v.Dividends,
			money(ada, adaOK),
			signedMoney(v.OverallReturn()),
			signedPercent(pct, pctOK),
		)
	}

	pct, pctOK := summary.OverallReturnPct()
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "- Total Invested: %s\n", summary.TotalInvested)
	fmt.Fprintf(&b, "- Current Value (Holdings): %s\n", summary.TotalValue)
	fmt.Fprintf(&b, "- Cash Available: %s\n", summary.Cash)
	fmt.Fprintf(&b, "- Total Value (incl. Cash): %s\n", summary.TotalValueInclCash())
	fmt.Fprintf(&b, "- Overall Return: %s (%s)\n", signedMoney(summary.OverallReturn()), signedPercent(pct, pctOK))
	return b.String()
}

// SummariesMarkdown renders the per-ticker business summaries.
func SummariesMarkdown(store *tracker.Store, payouts map[string]tracker.PayoutFrequency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ticker Summaries\n\n")
	for ticker, h := range store.Holdings() {
		fmt.Fprintf(&b, "## %s — %s\n\n", ticker, h.Name)
		if h.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", h.Summary)
		}
		if payout, ok := payouts[ticker]; ok {
			fmt.Fprintf(&b, "- Dividend Payout Frequency: %s\n\n", payout)
		}
	}
	return b.String()
}
