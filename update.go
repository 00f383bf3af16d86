package tracker

import (
	"errors"
	"fmt"
	"log"
)

// RefreshPrices fetches the latest close for every holding and records the
// successes in the durable price cache. Tickers that fail are skipped and
// their errors joined; a partial refresh is still a refresh. The store's
// LastUpdated stamp is set when at least one ticker succeeded.
func (s *Store) RefreshPrices(market MarketData) (updated int, errs error) {
	for ticker := range s.Holdings() {
		price, ok, err := market.LatestClose(ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not fetch price for %s: %w", ticker, err))
			continue
		}
		if !ok {
			log.Printf("no price available for %s", ticker)
			continue
		}
		s.CachePrice(ticker, price)
		updated++
	}
	if updated > 0 {
		s.LastUpdated = now().Format(DatetimeFormat)
	}
	return updated, errs
}

// Valuations resolves a price for every holding and derives its metrics,
// in ticker lexicographic order.
func Valuations(s *Store, p *Pricer) []Valuation {
	valuations := make([]Valuation, 0, s.Len())
	for ticker, h := range s.Holdings() {
		price, ok := p.Resolve(ticker)
		v := NewValuation(ticker, h, price, ok)
		v.Payout = p.Payout(ticker)
		valuations = append(valuations, v)
	}
	return valuations
}
