package eodhd

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tracker"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://eodhd.com/api"

// Gateway queries eodhd.com. It implements tracker.MarketData: unknown
// tickers degrade to "unavailable" results, only transport failures are
// returned as errors.
type Gateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a gateway with daily-cached HTTP responses.
func New(apiKey string) *Gateway {
	return &Gateway{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  newDailyCachingClient(),
	}
}

var _ tracker.MarketData = (*Gateway)(nil)

// LatestClose returns the most recent adjusted close over the trailing
// five days, following the market-data convention that "latest" tolerates
// weekends and holidays.
func (g *Gateway) LatestClose(ticker string) (decimal.Decimal, bool, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -5)
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		g.baseURL, url.PathEscape(ticker), g.apiKey,
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	type info struct {
		Date  string          `json:"date"`
		Close decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := jwget(g.client, addr, &content); err != nil {
		if errors.Is(err, errNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	if len(content) == 0 {
		return decimal.Zero, false, nil
	}
	return content[len(content)-1].Close, true, nil
}

// Profile returns the company name and business summary from the
// fundamentals endpoint. Unknown tickers echo the ticker back.
func (g *Gateway) Profile(ticker string) (tracker.Profile, error) {
	fallback := tracker.Profile{Name: ticker}
	addr := fmt.Sprintf("%s/fundamentals/%s?fmt=json&api_token=%s",
		g.baseURL, url.PathEscape(ticker), g.apiKey)

	// The fundamentals payload is a deep, mostly irrelevant tree, so it is
	// probed with jsonpath instead of mirroring it in structs.
	var jobj any
	if err := jwget(g.client, addr, &jobj); err != nil {
		if errors.Is(err, errNotFound) {
			return fallback, nil
		}
		return fallback, err
	}

	profile := fallback
	if name, ok := jstring(jobj, "$.General.Name"); ok && name != "" {
		profile.Name = name
	}
	if summary, ok := jstring(jobj, "$.General.Description"); ok {
		profile.Summary = summary
	}
	return profile, nil
}

// jstring extracts a string at path, tolerating a missing node.
func jstring(jobj any, path string) (string, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", false
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	return s, ok
}

// DividendHistory returns the dates of past dividend payments, oldest
// first. Unknown tickers yield an empty history.
func (g *Gateway) DividendHistory(ticker string) ([]tracker.Date, error) {
	addr := fmt.Sprintf("%s/div/%s?fmt=json&api_token=%s",
		g.baseURL, url.PathEscape(ticker), g.apiKey)

	type event struct {
		Date tracker.Date `json:"date"`
	}
	content := make([]event, 0)
	if err := jwget(g.client, addr, &content); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	dates := make([]tracker.Date, 0, len(content))
	for _, e := range content {
		dates = append(dates, e.Date)
	}
	return dates, nil
}
