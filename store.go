package tracker

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Version is the store schema version tag, stamped on every save.
const Version = "1.8.8"

// Settings holds the user preferences persisted with the store.
type Settings struct {
	Currency  string // display currency code
	AutoPrice bool   // query live prices instead of relying on the cache
}

// Store is the in-memory portfolio: all holdings plus uninvested cash,
// settings and the durable price cache. It is loaded once per session and
// saved after every mutating action. It is not safe for concurrent use.
type Store struct {
	holdings   map[string]*Holding
	lastPrices map[string]decimal.Decimal

	Cash        Money
	Settings    Settings
	LastUpdated string // RFC3339 timestamp of the last bulk price refresh
}

// now is the clock used for timestamps, swappable in tests.
var now = time.Now

// NewStore creates an empty store with default settings.
func NewStore() *Store {
	return &Store{
		holdings:   make(map[string]*Holding),
		lastPrices: make(map[string]decimal.Decimal),
		Settings:   Settings{Currency: "USD", AutoPrice: true},
	}
}

// Currency returns the store's display currency code.
func (s *Store) Currency() string { return s.Settings.Currency }

// Len returns the number of holdings.
func (s *Store) Len() int { return len(s.holdings) }

// Get returns the holding for this ticker, or nil if unknown.
func (s *Store) Get(ticker string) *Holding {
	return s.holdings[NormalizeTicker(ticker)]
}

// Tickers returns all tickers in lexicographic order.
func (s *Store) Tickers() []string {
	tickers := slices.Collect(maps.Keys(s.holdings))
	slices.Sort(tickers)
	return tickers
}

// Holdings iterates over holdings in ticker lexicographic order.
func (s *Store) Holdings() iter.Seq2[string, *Holding] {
	return func(yield func(string, *Holding) bool) {
		for _, ticker := range s.Tickers() {
			if !yield(ticker, s.holdings[ticker]) {
				return
			}
		}
	}
}

// Add creates a new holding. It rejects invalid records and duplicate
// tickers without mutating the store.
func (s *Store) Add(ticker string, h Holding) error {
	if err := h.Validate(ticker); err != nil {
		return err
	}
	ticker = NormalizeTicker(ticker)
	if _, exists := s.holdings[ticker]; exists {
		return fmt.Errorf("ticker %s already exists, edit the existing holding instead", ticker)
	}
	h.Created = now().Format(DatetimeFormat)
	s.holdings[ticker] = &h
	return nil
}

// Update replaces the user-editable fields of an existing holding and
// stamps its update time. Timestamps and dividend bookkeeping of the
// previous record are preserved unless provided.
func (s *Store) Update(ticker string, h Holding) error {
	ticker = NormalizeTicker(ticker)
	prev, exists := s.holdings[ticker]
	if !exists {
		return fmt.Errorf("unknown ticker %s", ticker)
	}
	if err := h.Validate(ticker); err != nil {
		return err
	}
	h.Created = prev.Created
	h.LastDivAmount = prev.LastDivAmount
	h.LastDivDate = prev.LastDivDate
	h.Updated = now().Format(DatetimeFormat)
	s.holdings[ticker] = &h
	return nil
}

// AddDividend credits a dividend payment against the holding, increasing
// its collected total and recording the last amount and date.
func (s *Store) AddDividend(ticker string, amount Money, on Date) error {
	ticker = NormalizeTicker(ticker)
	h, exists := s.holdings[ticker]
	if !exists {
		return fmt.Errorf("unknown ticker %s", ticker)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("dividend amount must be > 0, got %s", amount)
	}
	h.DividendsCollected = h.DividendsCollected.Add(amount)
	h.LastDivAmount = amount
	h.LastDivDate = on
	h.Updated = now().Format(DatetimeFormat)
	return nil
}

// Delete removes the holding entirely. The cached last price is kept, a
// stale entry there is harmless.
func (s *Store) Delete(ticker string) error {
	ticker = NormalizeTicker(ticker)
	if _, exists := s.holdings[ticker]; !exists {
		return fmt.Errorf("unknown ticker %s", ticker)
	}
	delete(s.holdings, ticker)
	return nil
}

// SetCash records the uninvested cash amount.
func (s *Store) SetCash(amount Money) { s.Cash = amount }

// CachePrice records the last successfully fetched price for a ticker.
// The cache is durable across sessions and serves as the fallback when
// live prices are unavailable.
func (s *Store) CachePrice(ticker string, price decimal.Decimal) {
	s.lastPrices[NormalizeTicker(ticker)] = price
}

// CachedPrice returns the last known price for a ticker, if any.
func (s *Store) CachedPrice(ticker string) (decimal.Decimal, bool) {
	price, ok := s.lastPrices[NormalizeTicker(ticker)]
	return price, ok
}
