package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type cashCmd struct{}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "show or set the uninvested cash balance" }
func (*cashCmd) Usage() string {
	return `ivt cash [<amount>]

  Without an argument, prints the current cash balance. With an amount,
  sets the balance to that value.
`
}

func (*cashCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	if f.NArg() == 0 {
		fmt.Printf("Cash (uninvested): %s\n", store.Cash)
		return subcommands.ExitSuccess
	}
	if f.NArg() > 1 {
		return usageErr("Error: expected at most one amount argument")
	}

	store.SetCash(tracker.ParseMoney(f.Arg(0), store.Currency()))
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Cash set to %s\n", store.Cash)
	return subcommands.ExitSuccess
}
