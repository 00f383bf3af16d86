package tracker

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(0, "USD"), "$0.00"},
		{M(-42.5, "USD"), "-$42.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(10, "USD").SignedString(); got != "+$10.00" {
		t.Errorf("positive SignedString = %q", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := M(-10, "USD").SignedString(); got != "-$10.00" {
		t.Errorf("negative SignedString = %q", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	total := M(120, "USD").Mul(Q(10))
	if !total.Equal(M(1200, "USD")) {
		t.Errorf("Mul = %v, want 1200", total)
	}
	per := M(950, "USD").Div(Q(10))
	if !per.Equal(M(95, "USD")) {
		t.Errorf("Div = %v, want 95", per)
	}
	// The empty currency is weak, so zero values combine with anything.
	sum := Money{}.Add(M(5, "USD"))
	if sum.Currency() != "USD" {
		t.Errorf("weak currency lost: %v", sum)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(26.3158).String(); got != "26.32%" {
		t.Errorf("String = %q, want 26.32%%", got)
	}
	if got := Percent(25).SignedString(); got != "+25.00%" {
		t.Errorf("SignedString = %q, want +25.00%%", got)
	}
}
