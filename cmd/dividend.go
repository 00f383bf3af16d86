package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// dividendCmd records a dividend payment on a holding.
type dividendCmd struct {
	amount string
	date   string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend payment" }
func (*dividendCmd) Usage() string {
	return `ivt dividend -a <amount> [-d <date>] <ticker>

  Adds the amount to the holding's collected dividends and records it as
  the most recent payment.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Dividend amount received")
	f.StringVar(&c.date, "d", tracker.Today().String(), "Payment date")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one ticker argument")
	}
	ticker := tracker.NormalizeTicker(f.Arg(0))

	on, err := tracker.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	amount := tracker.ParseMoney(c.amount, store.Currency())
	if err := store.AddDividend(ticker, amount, on); err != nil {
		return fail("Error recording dividend for %s: %v", ticker, err)
	}
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Recorded %s dividend for %s on %s\n", amount, ticker, on)
	return subcommands.ExitSuccess
}

// dividendsCmd displays the dividend report.
type dividendsCmd struct{}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display collected dividends per holding" }
func (*dividendsCmd) Usage() string {
	return `ivt dividends

  Displays collected dividends, the most recent payment and its date for
  each holding.
`
}

func (*dividendsCmd) SetFlags(f *flag.FlagSet) {}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	printMarkdown(renderer.DividendsMarkdown(store))
	return subcommands.ExitSuccess
}
