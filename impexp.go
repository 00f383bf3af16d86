package tracker

import (
	"fmt"
	"io"
)

// This file handles importing foreign store documents: merging an older
// file into the current store, and restoring a full backup. Both parse the
// incoming document completely before touching the store, so a malformed
// file changes nothing.

// MergeMode selects how an incoming ticker that already exists in the
// current store is handled.
type MergeMode int

const (
	// AddNewOnly keeps existing holdings untouched and only adds unknown tickers.
	AddNewOnly MergeMode = iota
	// Overwrite replaces existing holdings with the incoming record.
	Overwrite
)

func (m MergeMode) String() string {
	switch m {
	case AddNewOnly:
		return "add-new-only"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseMergeMode parses a string into a MergeMode.
func ParseMergeMode(s string) (MergeMode, error) {
	switch s {
	case "add-new-only":
		return AddNewOnly, nil
	case "overwrite":
		return Overwrite, nil
	default:
		return 0, fmt.Errorf("unknown merge mode: %q", s)
	}
}

// MergeReport counts what a merge did.
type MergeReport struct {
	Added   int
	Updated int
}

// Merge imports the holdings of an incoming store document into s.
// Unknown tickers are always added, with missing optional fields
// backfilled. Existing tickers are replaced only in Overwrite mode.
// Merge never deletes a ticker. Settings, cash and price cache of the
// current store are kept as they are.
func (s *Store) Merge(r io.Reader, mode MergeMode) (MergeReport, error) {
	incoming, err := DecodeStore(r)
	if err != nil {
		return MergeReport{}, fmt.Errorf("cannot merge: %w", err)
	}

	var report MergeReport
	for ticker, h := range incoming.Holdings() {
		merged := redenominate(h, s.Currency())
		if _, exists := s.holdings[ticker]; !exists {
			s.holdings[ticker] = merged
			report.Added++
			continue
		}
		if mode == Overwrite {
			s.holdings[ticker] = merged
			report.Updated++
		}
	}
	return report, nil
}

// RestoreStore replaces the whole store with the incoming document,
// backfilled. The previous store is discarded entirely; this is the backup
// restore, not a merge.
func RestoreStore(r io.Reader) (*Store, error) {
	store, err := DecodeStore(r)
	if err != nil {
		return nil, fmt.Errorf("cannot restore: %w", err)
	}
	return store, nil
}

// redenominate rewrites a holding's monetary fields in the target display
// currency. Amounts are plain numbers in the file format, only the label
// changes.
func redenominate(h *Holding, currency string) *Holding {
	c := *h
	c.TotalInvested = M(h.TotalInvested.Decimal(), currency)
	c.DividendsCollected = M(h.DividendsCollected.Decimal(), currency)
	c.LastDivAmount = M(h.LastDivAmount.Decimal(), currency)
	if h.PurchasePrice != nil {
		price := M(h.PurchasePrice.Decimal(), currency)
		c.PurchasePrice = &price
	}
	return &c
}
