package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	name      string
	shares    string
	invested  string
	price     string
	dividends string
	summary   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing holding" }
func (*editCmd) Usage() string {
	return `ivt edit [-n <name>] [-s <shares>] [-i <invested>] [-p <price>] [-d <dividends>] [-summary <text>] <ticker>

  Updates the given fields of an existing holding. Fields not given are
  left unchanged. Lifetime dividend dates and the creation timestamp are
  always preserved.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Display name for the holding")
	f.StringVar(&c.shares, "s", "", "Number of shares held")
	f.StringVar(&c.invested, "i", "", "Total amount invested")
	f.StringVar(&c.price, "p", "", "Purchase price per share")
	f.StringVar(&c.dividends, "d", "", "Dividends collected so far")
	f.StringVar(&c.summary, "summary", "", "Company summary text")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one ticker argument")
	}
	ticker := tracker.NormalizeTicker(f.Arg(0))

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	existing := store.Get(ticker)
	if existing == nil {
		return fail("Error: no holding for %s", ticker)
	}
	currency := store.Currency()

	h := *existing
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			h.Name = c.name
		case "s":
			h.Shares = tracker.ParseShares(c.shares)
		case "i":
			h.TotalInvested = tracker.ParseMoney(c.invested, currency)
		case "p":
			p := tracker.ParseMoney(c.price, currency)
			h.PurchasePrice = &p
		case "d":
			h.DividendsCollected = tracker.ParseMoney(c.dividends, currency)
		case "summary":
			h.Summary = c.summary
		}
	})

	if err := store.Update(ticker, h); err != nil {
		return fail("Error updating %s: %v", ticker, err)
	}
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Updated %s\n", ticker)
	return subcommands.ExitSuccess
}
