package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// mergeCmd imports holdings from another data file.
type mergeCmd struct {
	mode string
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "merge holdings from another data file" }
func (*mergeCmd) Usage() string {
	return `ivt merge [-m add-new-only|overwrite] <file>

  Imports holdings from an exported data file. In add-new-only mode
  (the default) existing holdings are kept untouched; in overwrite mode
  they are replaced by the imported ones. Merging never deletes a
  holding and never touches cash or settings.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "m", tracker.AddNewOnly.String(), "Merge mode")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageErr("Error: expected exactly one file argument")
	}
	mode, err := tracker.ParseMergeMode(c.mode)
	if err != nil {
		return usageErr("Error: %v", err)
	}

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail("Error opening import file: %v", err)
	}
	defer in.Close()

	report, err := store.Merge(in, mode)
	if err != nil {
		return fail("Error merging: %v", err)
	}
	if err := saveStore(store); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("Merged: %d added, %d updated\n", report.Added, report.Updated)
	return subcommands.ExitSuccess
}
