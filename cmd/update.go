package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// updateCmd refreshes cached prices and fills missing profiles.
type updateCmd struct {
	profiles bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh cached prices for all holdings" }
func (*updateCmd) Usage() string {
	return `ivt update [-profiles]

  Fetches the latest closing price for every holding and stores it in the
  price cache. Holdings that fail to fetch keep their previous cached
  price.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.profiles, "profiles", false, "also fill missing names and summaries")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	gw := market()
	updated, errs := store.RefreshPrices(gw)
	if errs != nil {
		fmt.Printf("Some prices could not be fetched:\n%v\n", errs)
	}

	if c.profiles {
		p := tracker.NewPricer(store, gw)
		for _, ticker := range store.Tickers() {
			p.FillProfile(ticker)
		}
	}

	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Updated %d of %d prices\n", updated, store.Len())
	return subcommands.ExitSuccess
}
