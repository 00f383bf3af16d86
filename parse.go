package tracker

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// This file contains the free-form text parsers used by the CLI forms.
// Both parsers are forgiving: anything unparsable yields zero, never an error,
// so a half-typed field degrades to "no value" instead of aborting the action.

// ParseMoney converts free-form text like "$1,234.56" into a Money in the
// given currency. It strips the currency symbol and code, thousands
// separators and whitespace. Empty or unparsable input yields zero.
func ParseMoney(text, currency string) Money {
	s := strings.TrimSpace(text)
	if cur := money.GetCurrency(currency); cur != nil {
		s = strings.ReplaceAll(s, cur.Grapheme, "")
		s = strings.ReplaceAll(s, cur.Code, "")
	}
	s = strings.ReplaceAll(s, "$", "")
	s = cleanNumber(s)
	if s == "" {
		return M(decimal.Zero, currency)
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return M(decimal.Zero, currency)
	}
	return M(value, currency)
}

// ParseShares converts free-form text like "100.391000" or "1,000.5" into a
// share Quantity. Empty or unparsable input yields zero.
func ParseShares(text string) Quantity {
	s := cleanNumber(text)
	if s == "" {
		return Q(decimal.Zero)
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Q(decimal.Zero)
	}
	return Q(value)
}

// cleanNumber removes grouping commas, regular and non-breaking spaces.
func cleanNumber(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', ' ', '\t':
			return -1
		}
		return r
	}, s)
}
