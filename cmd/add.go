package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name      string
	shares    string
	invested  string
	price     string
	dividends string
	profile   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new holding to the portfolio" }
func (*addCmd) Usage() string {
	return `ivt add -s <shares> -i <invested> [-n <name>] [-p <price>] [-d <dividends>] <ticker>

  Adds a new holding. Shares and invested amount are required and must be
  positive. Numbers accept thousands separators (e.g. "1,000.5").
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Display name for the holding")
	f.StringVar(&c.shares, "s", "", "Number of shares held")
	f.StringVar(&c.invested, "i", "", "Total amount invested")
	f.StringVar(&c.price, "p", "", "Purchase price per share (optional)")
	f.StringVar(&c.dividends, "d", "0", "Dividends collected so far")
	f.BoolVar(&c.profile, "profile", true, "fetch name and summary from the market data provider when missing")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one ticker argument")
	}
	ticker := tracker.NormalizeTicker(f.Arg(0))

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	currency := store.Currency()

	h := tracker.Holding{
		Name:               c.name,
		Shares:             tracker.ParseShares(c.shares),
		TotalInvested:      tracker.ParseMoney(c.invested, currency),
		DividendsCollected: tracker.ParseMoney(c.dividends, currency),
	}
	if c.price != "" {
		p := tracker.ParseMoney(c.price, currency)
		h.PurchasePrice = &p
	}

	if err := store.Add(ticker, h); err != nil {
		return fail("Error adding %s: %v", ticker, err)
	}

	if c.profile {
		p := tracker.NewPricer(store, market())
		p.FillProfile(ticker)
	}

	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Added %s to the portfolio\n", ticker)
	return subcommands.ExitSuccess
}
