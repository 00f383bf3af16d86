package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file defines the persisted store schema and its codec. The document
// is a single JSON object; every optional field has a documented default so
// files written by older versions decode cleanly. Only a structurally
// malformed document is a decode error.

// jholding is the persisted form of a Holding. Monetary fields are plain
// numbers in the store's display currency.
type jholding struct {
	Name               string           `json:"name"`
	Shares             decimal.Decimal  `json:"shares"`
	TotalInvested      decimal.Decimal  `json:"total_invested"`
	PurchasePrice      *decimal.Decimal `json:"purchase_price"`
	DividendsCollected decimal.Decimal  `json:"dividends_collected"`
	LastDivAmount      decimal.Decimal  `json:"last_div_amount"`
	LastDivDate        Date             `json:"last_div_date"`
	Summary            string           `json:"summary"`
	Created            string           `json:"created,omitempty"`
	Updated            string           `json:"updated,omitempty"`
}

// jsettings uses pointers to tell a missing field from an explicit false.
type jsettings struct {
	Currency  *string `json:"currency"`
	AutoPrice *bool   `json:"auto_price"`
}

type jstore struct {
	Holdings    map[string]jholding        `json:"holdings"`
	Cash        decimal.Decimal            `json:"cash_uninvested"`
	Settings    *jsettings                 `json:"settings"`
	LastPrices  map[string]decimal.Decimal `json:"last_prices"`
	LastUpdated string                     `json:"last_updated,omitempty"`
	Version     string                     `json:"version"`
}

// DecodeStore reads a store document, backfilling every missing optional
// field to its default: currency USD, auto-price on, zero dividends, no
// purchase price, empty last-dividend bookkeeping.
func DecodeStore(r io.Reader) (*Store, error) {
	var js jstore
	dec := json.NewDecoder(r)
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("malformed store document: %w", err)
	}

	s := NewStore()
	if js.Settings != nil {
		if js.Settings.Currency != nil && *js.Settings.Currency != "" {
			s.Settings.Currency = *js.Settings.Currency
		}
		if js.Settings.AutoPrice != nil {
			s.Settings.AutoPrice = *js.Settings.AutoPrice
		}
	}
	currency := s.Settings.Currency

	s.Cash = M(js.Cash, currency)
	s.LastUpdated = js.LastUpdated
	for ticker, price := range js.LastPrices {
		s.lastPrices[NormalizeTicker(ticker)] = price
	}
	for ticker, jh := range js.Holdings {
		s.holdings[NormalizeTicker(ticker)] = jh.holding(currency)
	}
	return s, nil
}

// holding converts the persisted record into the domain form.
func (jh jholding) holding(currency string) *Holding {
	h := &Holding{
		Name:               jh.Name,
		Shares:             Q(jh.Shares),
		TotalInvested:      M(jh.TotalInvested, currency),
		DividendsCollected: M(jh.DividendsCollected, currency),
		LastDivAmount:      M(jh.LastDivAmount, currency),
		LastDivDate:        jh.LastDivDate,
		Summary:            jh.Summary,
		Created:            jh.Created,
		Updated:            jh.Updated,
	}
	if jh.PurchasePrice != nil {
		price := M(*jh.PurchasePrice, currency)
		h.PurchasePrice = &price
	}
	return h
}

// record converts a domain holding into its persisted form.
func record(h *Holding) jholding {
	jh := jholding{
		Name:               h.Name,
		Shares:             h.Shares.Decimal(),
		TotalInvested:      h.TotalInvested.Decimal(),
		DividendsCollected: h.DividendsCollected.Decimal(),
		LastDivAmount:      h.LastDivAmount.Decimal(),
		LastDivDate:        h.LastDivDate,
		Summary:            h.Summary,
		Created:            h.Created,
		Updated:            h.Updated,
	}
	if h.PurchasePrice != nil {
		price := h.PurchasePrice.Decimal()
		jh.PurchasePrice = &price
	}
	return jh
}

// EncodeStore writes the full store as an indented JSON document, stamped
// with the current schema version.
func EncodeStore(w io.Writer, s *Store) error {
	js := jstore{
		Holdings:    make(map[string]jholding, len(s.holdings)),
		Cash:        s.Cash.Decimal(),
		Settings:    &jsettings{Currency: &s.Settings.Currency, AutoPrice: &s.Settings.AutoPrice},
		LastPrices:  s.lastPrices,
		LastUpdated: s.LastUpdated,
		Version:     Version,
	}
	for ticker, h := range s.holdings {
		js.Holdings[ticker] = record(h)
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write store: %w", err)
	}
	return nil
}
