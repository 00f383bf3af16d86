package tracker

import (
	"log"
	"unicode/utf8"
)

// Pricer resolves current prices for the session, applying the auto-price
// policy: live price when enabled and available, otherwise the durable
// lastPrices cache, otherwise undefined. Results are memoized for the
// session so one refresh does not query the same ticker twice.
type Pricer struct {
	store  *Store
	market MarketData

	prices  map[string]resolved
	payouts map[string]PayoutFrequency
}

type resolved struct {
	price Money
	ok    bool
}

// NewPricer creates a pricer over the store's cache and settings.
func NewPricer(store *Store, market MarketData) *Pricer {
	return &Pricer{
		store:   store,
		market:  market,
		prices:  make(map[string]resolved),
		payouts: make(map[string]PayoutFrequency),
	}
}

// Resolve returns the current price for the ticker. A live fetch failure is
// logged and degrades to the cached price; ok is false only when neither a
// live nor a cached price exists.
func (p *Pricer) Resolve(ticker string) (Money, bool) {
	ticker = NormalizeTicker(ticker)
	if r, seen := p.prices[ticker]; seen {
		return r.price, r.ok
	}
	r := p.resolve(ticker)
	p.prices[ticker] = r
	return r.price, r.ok
}

func (p *Pricer) resolve(ticker string) resolved {
	if p.store.Settings.AutoPrice {
		price, ok, err := p.market.LatestClose(ticker)
		if err != nil {
			log.Printf("could not fetch price for %s: %v", ticker, err)
		} else if ok {
			p.store.CachePrice(ticker, price)
			return resolved{price: M(price, p.store.Currency()), ok: true}
		}
	}
	if price, ok := p.store.CachedPrice(ticker); ok {
		return resolved{price: M(price, p.store.Currency()), ok: true}
	}
	return resolved{}
}

// Payout classifies the ticker's dividend cadence from the gateway's
// dividend history. Any gateway failure degrades to Irregular.
func (p *Pricer) Payout(ticker string) PayoutFrequency {
	ticker = NormalizeTicker(ticker)
	if f, seen := p.payouts[ticker]; seen {
		return f
	}
	f := Irregular
	events, err := p.market.DividendHistory(ticker)
	if err != nil {
		log.Printf("could not fetch dividend history for %s: %v", ticker, err)
	} else {
		f = ClassifyPayout(events, Today())
	}
	p.payouts[ticker] = f
	return f
}

// summaryMaxLen bounds the cached business summary, matching the display.
const summaryMaxLen = 500

// FillProfile backfills a blank holding name and summary from the
// gateway's profile, once. A gateway failure leaves the holding unchanged.
func (p *Pricer) FillProfile(ticker string) {
	ticker = NormalizeTicker(ticker)
	h := p.store.Get(ticker)
	if h == nil || (h.Name != "" && h.Summary != "") {
		return
	}
	profile, err := p.market.Profile(ticker)
	if err != nil {
		log.Printf("could not fetch profile for %s: %v", ticker, err)
		return
	}
	if h.Name == "" {
		h.Name = profile.Name
	}
	if h.Summary == "" {
		h.Summary = truncate(profile.Summary, summaryMaxLen)
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
