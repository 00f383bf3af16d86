package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// settingsCmd shows or changes the store settings.
type settingsCmd struct {
	currency  string
	autoPrice bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change portfolio settings" }
func (*settingsCmd) Usage() string {
	return `ivt settings [-c <currency>] [-auto-price=<bool>]

  Without flags, prints the current settings. Changing the currency only
  relabels amounts, it does not convert them.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency code (e.g. USD, EUR)")
	f.BoolVar(&c.autoPrice, "auto-price", true, "fetch live prices when reporting")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	changed := false
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "c":
			store.Settings.Currency = c.currency
			changed = true
		case "auto-price":
			store.Settings.AutoPrice = c.autoPrice
			changed = true
		}
	})

	if changed {
		if err := saveStore(store); err != nil {
			return fail("Error saving portfolio: %v", err)
		}
	}
	fmt.Printf("Currency:   %s\n", store.Settings.Currency)
	fmt.Printf("Auto price: %v\n", store.Settings.AutoPrice)
	return subcommands.ExitSuccess
}
