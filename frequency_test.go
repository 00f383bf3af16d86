package tracker

import (
	"testing"
	"time"
)

// spacedDates builds n events spaced 'gap' days apart, ending at 'end'.
func spacedDates(end Date, gap, n int) []Date {
	events := make([]Date, n)
	for i := range events {
		events[i] = end.Add(-gap * (n - 1 - i))
	}
	return events
}

func TestClassifyPayout(t *testing.T) {
	now := NewDate(2026, time.January, 15)

	tests := []struct {
		name   string
		events []Date
		want   PayoutFrequency
	}{
		{"no events", nil, Irregular},
		{"two events", spacedDates(now, 30, 2), Irregular},
		{"weekly", spacedDates(now, 7, 10), Weekly},
		{"monthly", spacedDates(now, 30, 6), Monthly},
		{"quarterly", spacedDates(now, 91, 5), Quarterly},
		{"semiannual", spacedDates(now, 182, 4), Semiannual},
		{"annual", spacedDates(now.Add(-10), 365, 3), Annual},
		{"too sparse", spacedDates(now.Add(-10), 500, 3), Irregular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPayout(tt.events, now); got != tt.want {
				t.Errorf("ClassifyPayout = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyPayoutWindow(t *testing.T) {
	now := NewDate(2026, time.January, 15)

	// Ten monthly events, all older than three years: outside the window.
	old := spacedDates(now.Add(-4*365), 30, 10)
	if got := ClassifyPayout(old, now); got != Irregular {
		t.Errorf("stale events should classify as Irregular, got %v", got)
	}

	// Same cadence but recent: the window keeps them.
	recent := spacedDates(now, 30, 10)
	if got := ClassifyPayout(recent, now); got != Monthly {
		t.Errorf("recent monthly events = %v, want Monthly", got)
	}
}

func TestClassifyPayoutUnsorted(t *testing.T) {
	now := NewDate(2026, time.January, 15)
	events := []Date{now, now.Add(-60), now.Add(-30), now.Add(-90)}
	if got := ClassifyPayout(events, now); got != Monthly {
		t.Errorf("unsorted events = %v, want Monthly", got)
	}
}

func TestClassifyPayoutEvenMedian(t *testing.T) {
	now := NewDate(2026, time.January, 15)
	// Gaps 7 and 80: even count, median is their mean 43.5, within Monthly.
	events := []Date{now.Add(-87), now.Add(-80), now}
	if got := ClassifyPayout(events, now); got != Monthly {
		t.Errorf("even gap count = %v, want Monthly", got)
	}
}

func TestMedian(t *testing.T) {
	if got := median([]int{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %v, want 2", got)
	}
	if got := median([]int{4, 1, 2, 3}); got != 2.5 {
		t.Errorf("even median = %v, want 2.5", got)
	}
}
