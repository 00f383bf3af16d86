package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// DividendsMarkdown renders the dividend bookkeeping: collected totals and
// the last recorded payment per holding.
func DividendsMarkdown(store *tracker.Store) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dividends\n\n")

	if store.Len() == 0 {
		fmt.Fprintln(&b, "Add a holding first.")
		return b.String()
	}

	total := tracker.M(0, store.Currency())
	fmt.Fprintln(&b, "| Ticker | Dividends Collected | Last Dividend | Last Dividend Date |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|")
	for ticker, h := range store.Holdings() {
		lastAmount := undefinedCell
		if !h.LastDivAmount.IsZero() {
			lastAmount = h.LastDivAmount.String()
		}
		lastDate := undefinedCell
		if !h.LastDivDate.IsZero() {
			lastDate = h.LastDivDate.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", ticker, h.DividendsCollected, lastAmount, lastDate)
		total = total.Add(h.DividendsCollected)
	}

	fmt.Fprintf(&b, "\n- Total Dividends Collected: %s\n", total)
	return b.String()
}
