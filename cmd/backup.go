package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// backupCmd exports the full data file.
type backupCmd struct{}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the portfolio to a file" }
func (*backupCmd) Usage() string {
	return `ivt backup [<file>]

  Writes the full portfolio (holdings, cash, settings and price cache)
  to the given file. Without an argument a timestamped file is created
  in the current directory. Use '-' for stdout.
`
}

func (*backupCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usageErr("Error: expected at most one file argument")
	}

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	if f.Arg(0) == "-" {
		if err := tracker.EncodeStore(os.Stdout, store); err != nil {
			return fail("Error writing backup: %v", err)
		}
		return subcommands.ExitSuccess
	}

	name := f.Arg(0)
	if name == "" {
		name = time.Now().Format("portfolio_backup_20060102_150405.json")
	}
	if err := tracker.SaveStore(name, store); err != nil {
		return fail("Error writing backup: %v", err)
	}
	fmt.Printf("Backup written to %s\n", name)
	return subcommands.ExitSuccess
}

// restoreCmd replaces the data file from a backup.
type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the portfolio from a backup file" }
func (*restoreCmd) Usage() string {
	return `ivt restore <file>

  Replaces the whole portfolio with the backup's content. A malformed
  backup is rejected and the current portfolio is left untouched.
`
}

func (*restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one file argument")
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail("Error opening backup file: %v", err)
	}
	defer in.Close()

	store, err := tracker.RestoreStore(in)
	if err != nil {
		return fail("Error reading backup: %v", err)
	}
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Restored %d holdings from %s\n", store.Len(), f.Arg(0))
	return subcommands.ExitSuccess
}
