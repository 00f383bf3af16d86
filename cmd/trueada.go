package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// trueadaCmd displays the dividend-adjusted cost basis report.
type trueadaCmd struct{}

func (*trueadaCmd) Name() string     { return "trueada" }
func (*trueadaCmd) Synopsis() string { return "display the dividend-adjusted cost basis" }
func (*trueadaCmd) Usage() string {
	return `ivt trueada

  Displays the true adjusted dollar average: the effective cost per share
  after subtracting collected dividends from the invested amount.
`
}

func (*trueadaCmd) SetFlags(f *flag.FlagSet) {}

func (c *trueadaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	p := tracker.NewPricer(store, market())
	valuations := tracker.Valuations(store, p)
	summary := tracker.Summarize(valuations, store.Cash, store.Currency())

	printMarkdown(renderer.TrueADAMarkdown(valuations, summary))

	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	return subcommands.ExitSuccess
}
