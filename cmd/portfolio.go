package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd displays the main holdings report.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio with prices and returns" }
func (*portfolioCmd) Usage() string {
	return `ivt portfolio

  Displays every holding with its current price, market value, dividends
  and returns, followed by portfolio totals. Holdings without a price
  show an em dash in price-dependent columns.
`
}

func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	p := tracker.NewPricer(store, market())
	valuations := tracker.Valuations(store, p)
	summary := tracker.Summarize(valuations, store.Cash, store.Currency())

	printMarkdown(renderer.PortfolioMarkdown(valuations, summary))

	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	return subcommands.ExitSuccess
}

// summariesCmd displays company names and summaries.
type summariesCmd struct{}

func (*summariesCmd) Name() string     { return "summaries" }
func (*summariesCmd) Synopsis() string { return "display company profiles and payout schedules" }
func (*summariesCmd) Usage() string {
	return `ivt summaries

  Displays the company name, summary and the payout schedule inferred
  from the dividend history of each holding.
`
}

func (*summariesCmd) SetFlags(f *flag.FlagSet) {}

func (c *summariesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	p := tracker.NewPricer(store, market())
	payouts := make(map[string]tracker.PayoutFrequency)
	for _, ticker := range store.Tickers() {
		p.FillProfile(ticker)
		payouts[ticker] = p.Payout(ticker)
	}

	printMarkdown(renderer.SummariesMarkdown(store, payouts))

	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	return subcommands.ExitSuccess
}
