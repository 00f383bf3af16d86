// Package cmd implements the CLI application to manage an investment tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/eodhd"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order.
// A main package ranges over Commands and registers each one.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&dividendCmd{},
	&cashCmd{},
	&settingsCmd{},
	&updateCmd{},
	&portfolioCmd{},
	&summariesCmd{},
	&trueadaCmd{},
	&dividendsCmd{},
	&mergeCmd{},
	&backupCmd{},
	&restoreCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("file", tracker.DefaultStorePath(), "Path to the portfolio data file (JSON format)")

// loadStore is the central function to open the data file. A missing file
// yields an empty store.
func loadStore() (*tracker.Store, error) {
	return tracker.LoadStore(*storeFile)
}

// saveStore writes the store back to the data file.
func saveStore(s *tracker.Store) error {
	return tracker.SaveStore(*storeFile, s)
}

// market returns the EODHD gateway for price and profile lookups.
func market() *eodhd.Gateway {
	return eodhd.New(eodhd.APIKey())
}

// fail prints the error and maps it to a failure exit status.
func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// usageErr prints the error and maps it to a usage error exit status.
func usageErr(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
