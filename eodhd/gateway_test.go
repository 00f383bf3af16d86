package eodhd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// testGateway points a gateway at a local fake eodhd server, bypassing the
// daily disk cache.
func testGateway(t *testing.T, handler http.Handler) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Gateway{apiKey: "demo", baseURL: server.URL, client: server.Client()}
}

func TestLatestClose(t *testing.T) {
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/eod/MO") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[
		  {"date": "2026-08-27", "adjusted_close": 54.10},
		  {"date": "2026-08-28", "adjusted_close": 55.25}
		]`)
	}))

	price, ok, err := g.LatestClose("MO")
	if err != nil {
		t.Fatalf("LatestClose: %v", err)
	}
	if !ok {
		t.Fatalf("LatestClose: no price")
	}
	if want := decimal.NewFromFloat(55.25); !price.Equal(want) {
		t.Errorf("LatestClose = %v, want %v (the most recent close)", price, want)
	}
}

func TestLatestCloseUnknownTicker(t *testing.T) {
	g := testGateway(t, http.NotFoundHandler())

	_, ok, err := g.LatestClose("NOPE")
	if err != nil {
		t.Fatalf("an unknown ticker is unavailable, not an error, got %v", err)
	}
	if ok {
		t.Errorf("unknown ticker should have no price")
	}
}

func TestLatestCloseEmptyHistory(t *testing.T) {
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	_, ok, err := g.LatestClose("MO")
	if err != nil || ok {
		t.Errorf("empty history should be unavailable without error, got ok=%v err=%v", ok, err)
	}
}

func TestLatestCloseServerError(t *testing.T) {
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	if _, _, err := g.LatestClose("MO"); err == nil {
		t.Errorf("a server failure should surface as an error")
	}
}

func TestProfile(t *testing.T) {
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"General": {"Name": "Altria Group Inc", "Description": "Tobacco company."}}`)
	}))

	profile, err := g.Profile("MO")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name != "Altria Group Inc" {
		t.Errorf("Name = %q, want Altria Group Inc", profile.Name)
	}
	if profile.Summary != "Tobacco company." {
		t.Errorf("Summary = %q, want Tobacco company.", profile.Summary)
	}
}

func TestProfileFallback(t *testing.T) {
	g := testGateway(t, http.NotFoundHandler())

	profile, err := g.Profile("NOPE")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name != "NOPE" {
		t.Errorf("unknown ticker should echo back as the name, got %q", profile.Name)
	}
}

func TestProfilePartialPayload(t *testing.T) {
	// A payload without General.Name keeps the ticker as the name.
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"General": {"Description": "No name here."}}`)
	}))

	profile, err := g.Profile("MO")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name != "MO" {
		t.Errorf("Name = %q, want the ticker fallback", profile.Name)
	}
	if profile.Summary != "No name here." {
		t.Errorf("Summary = %q", profile.Summary)
	}
}

func TestDividendHistory(t *testing.T) {
	g := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
		  {"date": "2026-01-10", "value": 0.98},
		  {"date": "2026-04-10", "value": 1.02}
		]`)
	}))

	dates, err := g.DividendHistory("MO")
	if err != nil {
		t.Fatalf("DividendHistory: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("len = %d, want 2", len(dates))
	}
	if dates[0].String() != "2026-01-10" || dates[1].String() != "2026-04-10" {
		t.Errorf("dates = %v", dates)
	}
}

func TestDividendHistoryUnknownTicker(t *testing.T) {
	g := testGateway(t, http.NotFoundHandler())
	dates, err := g.DividendHistory("NOPE")
	if err != nil {
		t.Fatalf("DividendHistory: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("unknown ticker should have an empty history, got %v", dates)
	}
}
