package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*deleteCmd) Usage() string {
	return `ivt delete <ticker>

  Removes the holding. Other holdings, cash and settings are unchanged.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one ticker argument")
	}
	ticker := tracker.NormalizeTicker(f.Arg(0))

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	if err := store.Delete(ticker); err != nil {
		return fail("Error deleting %s: %v", ticker, err)
	}
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Deleted %s from the portfolio\n", ticker)
	return subcommands.ExitSuccess
}
