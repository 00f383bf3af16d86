package tracker

import (
	"fmt"
	"slices"
	"sort"
)

// PayoutFrequency is the categorical dividend cadence of a security,
// inferred from the spacing of its historical dividend events.
type PayoutFrequency int

const (
	// Irregular means no reliable cadence could be inferred.
	Irregular PayoutFrequency = iota
	Weekly
	Monthly
	Quarterly
	Semiannual
	Annual
)

func (f PayoutFrequency) String() string {
	switch f {
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case Semiannual:
		return "Semiannual"
	case Annual:
		return "Annual"
	default:
		return "Irregular/None"
	}
}

// ParsePayoutFrequency parses a string into a PayoutFrequency.
func ParsePayoutFrequency(s string) (PayoutFrequency, error) {
	switch s {
	case "Weekly":
		return Weekly, nil
	case "Monthly":
		return Monthly, nil
	case "Quarterly":
		return Quarterly, nil
	case "Semiannual":
		return Semiannual, nil
	case "Annual":
		return Annual, nil
	case "Irregular/None":
		return Irregular, nil
	default:
		return 0, fmt.Errorf("unknown payout frequency: %q", s)
	}
}

// lookback is the trailing window considered when classifying dividends,
// three 365-day years.
const lookbackDays = 3 * 365

// ClassifyPayout buckets the median interval between recent dividend events
// into a payout cadence.
//
// Events older than three years before 'now' are ignored. Fewer than three
// events, in total or within the window, yield Irregular: a cadence cannot
// be read from fewer than two gaps.
func ClassifyPayout(events []Date, now Date) PayoutFrequency {
	if len(events) < 3 {
		return Irregular
	}

	cutoff := now.Add(-lookbackDays)
	recent := make([]Date, 0, len(events))
	for _, e := range events {
		if !e.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	if len(recent) < 3 {
		return Irregular
	}

	slices.SortFunc(recent, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	gaps := make([]int, 0, len(recent)-1)
	for i := 1; i < len(recent); i++ {
		gaps = append(gaps, recent[i].Days(recent[i-1]))
	}

	med := median(gaps)
	switch {
	case med <= 9:
		return Weekly
	case med <= 45:
		return Monthly
	case med <= 115:
		return Quarterly
	case med <= 220:
		return Semiannual
	case med <= 400:
		return Annual
	default:
		return Irregular
	}
}

// median returns the middle value of the series, or the mean of the two
// middle values when the length is even.
func median(values []int) float64 {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
