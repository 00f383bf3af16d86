package tracker

import "github.com/shopspring/decimal"

// Profile holds the descriptive data returned by a data provider for a ticker.
type Profile struct {
	Name    string
	Summary string
}

// MarketData is the external market-data gateway.
//
// Implementations must tolerate unknown or invalid tickers by returning
// ok=false (LatestClose), a ticker-echoed Profile, or an empty history,
// rather than failing the caller. A transport error is still an error.
type MarketData interface {
	// LatestClose returns the latest closing price for the ticker.
	// ok is false when the provider has no price for it.
	LatestClose(ticker string) (price decimal.Decimal, ok bool, err error)

	// Profile returns the display name and business summary for the ticker.
	// Unknown tickers echo the ticker as name with an empty summary.
	Profile(ticker string) (Profile, error)

	// DividendHistory returns the dates of past dividend events for the
	// ticker, oldest first. Unknown tickers yield an empty history.
	DividendHistory(ticker string) ([]Date, error)
}
