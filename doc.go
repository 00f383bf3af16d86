// Package tracker implements a single-user personal investment ledger:
// holdings recorded by ticker, live prices and dividend cadence from a
// market-data gateway, derived return metrics (overall return, true
// dividend-adjusted cost basis), and a flat JSON file as persistence.
//
// The store is loaded once per session, mutated by explicit actions, and
// synchronously saved as a full snapshot after every mutation. Metrics
// whose preconditions fail (no price, no shares, nothing invested) are
// undefined and reported through (value, ok) pairs, never coerced to zero.
package tracker
