package tracker

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func fixedClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func TestStoreAdd(t *testing.T) {
	fixedClock(t)
	s := NewStore()

	h := Holding{Shares: Q(10), TotalInvested: M(1000, "USD")}
	if err := s.Add("mo", h); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got := s.Get("MO")
	if got == nil {
		t.Fatalf("holding not found under normalized ticker")
	}
	if got.Created == "" {
		t.Errorf("Created timestamp not stamped")
	}

	// Lookups are case-insensitive both ways.
	if s.Get("mo") == nil {
		t.Errorf("lowercase lookup should find the holding")
	}

	if err := s.Add("MO", h); err == nil {
		t.Errorf("duplicate ticker should be rejected")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreAddInvalid(t *testing.T) {
	s := NewStore()
	tests := []struct {
		name   string
		ticker string
		h      Holding
	}{
		{"empty ticker", "", Holding{Shares: Q(1), TotalInvested: M(1, "USD")}},
		{"zero shares", "MO", Holding{Shares: Q(0), TotalInvested: M(1, "USD")}},
		{"negative shares", "MO", Holding{Shares: Q(-1), TotalInvested: M(1, "USD")}},
		{"zero invested", "MO", Holding{Shares: Q(1), TotalInvested: M(0, "USD")}},
		{"negative dividends", "MO", Holding{Shares: Q(1), TotalInvested: M(1, "USD"), DividendsCollected: M(-1, "USD")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Add(tt.ticker, tt.h); err == nil {
				t.Errorf("Add should fail")
			}
		})
	}
	if s.Len() != 0 {
		t.Errorf("rejected adds must not mutate the store")
	}
}

func TestValidateListsAllFailures(t *testing.T) {
	h := Holding{Shares: Q(0), TotalInvested: M(0, "USD"), DividendsCollected: M(-1, "USD")}
	err := h.Validate("")
	if err == nil {
		t.Fatalf("Validate should fail")
	}
	msg := err.Error()
	for _, want := range []string{"ticker", "shares", "invested", "dividends"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestStoreUpdate(t *testing.T) {
	fixedClock(t)
	s := NewStore()
	if err := s.Add("MO", Holding{Shares: Q(10), TotalInvested: M(1000, "USD")}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.AddDividend("MO", M(5, "USD"), MustParseDate("2026-01-10")); err != nil {
		t.Fatalf("AddDividend: %v", err)
	}
	created := s.Get("MO").Created

	err := s.Update("MO", Holding{Name: "Altria", Shares: Q(20), TotalInvested: M(2000, "USD"), DividendsCollected: M(5, "USD")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	h := s.Get("MO")
	if h.Name != "Altria" || !h.Shares.Equal(Q(20)) {
		t.Errorf("update not applied: %+v", h)
	}
	if h.Created != created {
		t.Errorf("Created = %q, want preserved %q", h.Created, created)
	}
	if h.LastDivDate != MustParseDate("2026-01-10") {
		t.Errorf("LastDivDate = %v, want preserved 2026-01-10", h.LastDivDate)
	}
	if h.Updated == "" {
		t.Errorf("Updated timestamp not stamped")
	}

	if err := s.Update("XX", Holding{Shares: Q(1), TotalInvested: M(1, "USD")}); err == nil {
		t.Errorf("Update of unknown ticker should fail")
	}
}

func TestStoreAddDividend(t *testing.T) {
	fixedClock(t)
	s := NewStore()
	if err := s.Add("MO", Holding{Shares: Q(10), TotalInvested: M(1000, "USD")}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	on := MustParseDate("2026-01-10")
	if err := s.AddDividend("MO", M(12.5, "USD"), on); err != nil {
		t.Fatalf("AddDividend: %v", err)
	}
	if err := s.AddDividend("MO", M(7.5, "USD"), on.Add(30)); err != nil {
		t.Fatalf("AddDividend: %v", err)
	}

	h := s.Get("MO")
	if !h.DividendsCollected.Equal(M(20, "USD")) {
		t.Errorf("DividendsCollected = %v, want 20", h.DividendsCollected)
	}
	if !h.LastDivAmount.Equal(M(7.5, "USD")) {
		t.Errorf("LastDivAmount = %v, want 7.5", h.LastDivAmount)
	}
	if h.LastDivDate != on.Add(30) {
		t.Errorf("LastDivDate = %v, want %v", h.LastDivDate, on.Add(30))
	}

	if err := s.AddDividend("MO", M(0, "USD"), on); err == nil {
		t.Errorf("zero dividend should be rejected")
	}
	if err := s.AddDividend("XX", M(1, "USD"), on); err == nil {
		t.Errorf("dividend on unknown ticker should fail")
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	s.Add("MO", Holding{Shares: Q(10), TotalInvested: M(1000, "USD")})
	s.Add("KO", Holding{Shares: Q(5), TotalInvested: M(500, "USD")})

	if err := s.Delete("MO"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Get("MO") != nil {
		t.Errorf("deleted holding still present")
	}
	if s.Get("KO") == nil {
		t.Errorf("other holdings must be unchanged")
	}
	if err := s.Delete("MO"); err == nil {
		t.Errorf("double delete should fail")
	}
}

func TestStoreTickersSorted(t *testing.T) {
	s := NewStore()
	for _, ticker := range []string{"MSFT", "AAPL", "KO"} {
		s.Add(ticker, Holding{Shares: Q(1), TotalInvested: M(1, "USD")})
	}
	got := s.Tickers()
	want := []string{"AAPL", "KO", "MSFT"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tickers = %v, want %v", got, want)
		}
	}
}

func TestStorePriceCache(t *testing.T) {
	s := NewStore()
	if _, ok := s.CachedPrice("MO"); ok {
		t.Errorf("empty cache should miss")
	}
	s.CachePrice("mo", decimal.NewFromInt(55))
	price, ok := s.CachedPrice("MO")
	if !ok || !price.Equal(decimal.NewFromInt(55)) {
		t.Errorf("CachedPrice = %v (%v), want 55", price, ok)
	}
}
