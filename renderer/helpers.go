// Package renderer turns portfolio reports into markdown strings, to be
// printed through a terminal markdown renderer by the CLI.
package renderer

import "github.com/etnz/tracker"

// In tables an undefined metric renders as an em-dash placeholder rather
// than a zero, so a missing price never reads as a loss.
const undefinedCell = "—"

func money(m tracker.Money, ok bool) string {
	if !ok {
		return undefinedCell
	}
	return m.String()
}

func signedMoney(m tracker.Money) string {
	return m.SignedString()
}

func percent(p tracker.Percent, ok bool) string {
	if !ok {
		return undefinedCell
	}
	return p.String()
}

func signedPercent(p tracker.Percent, ok bool) string {
	if !ok {
		return undefinedCell
	}
	return p.SignedString()
}

func optMoney(m *tracker.Money) string {
	if m == nil {
		return undefinedCell
	}
	return m.String()
}
