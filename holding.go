package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// Holding is a single position in the store, keyed by its ticker.
type Holding struct {
	Name               string
	Shares             Quantity
	TotalInvested      Money
	PurchasePrice      *Money // nil when the per-share cost was not provided
	DividendsCollected Money
	LastDivAmount      Money
	LastDivDate        Date
	Summary            string
	Created            string // RFC3339, stamped by the store on creation
	Updated            string // RFC3339, stamped by the store on edit
}

// NormalizeTicker upper-cases and trims a ticker symbol. All store entry
// points normalize, so "aapl " and "AAPL" address the same holding.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Validate checks the preconditions for adding the holding under 'ticker'.
// It reports every failed precondition, not just the first one.
func (h Holding) Validate(ticker string) error {
	var errs error
	if NormalizeTicker(ticker) == "" {
		errs = errors.Join(errs, errors.New("ticker must not be empty"))
	}
	if !h.Shares.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("shares must be > 0, got %s", h.Shares))
	}
	if !h.TotalInvested.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("total invested must be > 0, got %s", h.TotalInvested))
	}
	if h.DividendsCollected.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("dividends collected must not be negative, got %s", h.DividendsCollected))
	}
	return errs
}
