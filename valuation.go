package tracker

// This file implements the per-holding valuation metrics and the
// portfolio-level aggregation. A metric whose preconditions fail is
// undefined and reported through a false ok, never coerced to zero:
// a missing price must read as "unknown", not as a total loss.

// Valuation combines one holding with its resolved current price into
// derived return metrics.
type Valuation struct {
	Ticker        string
	Name          string
	Shares        Quantity
	Invested      Money
	Dividends     Money
	PurchasePrice *Money // as recorded, nil when not provided
	Payout        PayoutFrequency

	price    Money
	hasPrice bool
}

// NewValuation builds the valuation of a holding given its resolved price.
// hasPrice is false when price resolution failed, see Pricer.
func NewValuation(ticker string, h *Holding, price Money, hasPrice bool) Valuation {
	return Valuation{
		Ticker:        ticker,
		Name:          h.Name,
		Shares:        h.Shares,
		Invested:      h.TotalInvested,
		Dividends:     h.DividendsCollected,
		PurchasePrice: h.PurchasePrice,
		price:         price,
		hasPrice:      hasPrice,
	}
}

// Price returns the resolved current price per share, ok is false when no
// live or cached price was available.
func (v Valuation) Price() (Money, bool) { return v.price, v.hasPrice }

// MarketValue returns shares times current price, undefined without a price.
func (v Valuation) MarketValue() (Money, bool) {
	if !v.hasPrice {
		return Money{}, false
	}
	return v.price.Mul(v.Shares), true
}

// OverallReturn returns the unrealized price gain plus all collected
// dividends, in the store currency. Without a price the gain contributes
// zero and dividends alone make up the return.
func (v Valuation) OverallReturn() Money {
	gain := M(0, v.Invested.Currency())
	if mv, ok := v.MarketValue(); ok {
		gain = mv.Sub(v.Invested)
	}
	return gain.Add(v.Dividends)
}

// OverallReturnPct returns the overall return as a percentage of the total
// invested, undefined when nothing was invested.
func (v Valuation) OverallReturnPct() (Percent, bool) {
	if !v.Invested.IsPositive() {
		return 0, false
	}
	ratio := v.OverallReturn().Decimal().Div(v.Invested.Decimal())
	return Percent(100 * ratio.InexactFloat64()), true
}

// TrueADA returns the dividend-adjusted cost basis per share: total
// invested minus all dividends collected, divided by the share count.
// It is the break-even price once dividends are credited against cost.
// Undefined when the position holds no shares.
func (v Valuation) TrueADA() (Money, bool) {
	if !v.Shares.IsPositive() {
		return Money{}, false
	}
	return v.Invested.Sub(v.Dividends).Div(v.Shares), true
}

// ReturnVsTrueADA returns how far the current price sits above or below
// the true ADA, in percent. Undefined without a price, without shares, or
// when the true ADA is zero.
func (v Valuation) ReturnVsTrueADA() (Percent, bool) {
	ada, ok := v.TrueADA()
	if !ok || !v.hasPrice || ada.IsZero() {
		return 0, false
	}
	ratio := v.price.Sub(ada).Decimal().Div(ada.Decimal())
	return Percent(100 * ratio.InexactFloat64()), true
}

// Summary holds the portfolio-level totals over all holdings.
//
// TotalValue sums market values only over holdings with a defined price;
// an unpriced holding contributes nothing to the total but keeps its own
// metrics undefined in per-holding views.
type Summary struct {
	Currency       string
	TotalInvested  Money
	TotalValue     Money
	TotalDividends Money
	Cash           Money
	TotalShares    Quantity
}

// Summarize aggregates per-holding valuations into portfolio totals.
func Summarize(valuations []Valuation, cash Money, currency string) Summary {
	s := Summary{
		Currency:       currency,
		TotalInvested:  M(0, currency),
		TotalValue:     M(0, currency),
		TotalDividends: M(0, currency),
		Cash:           cash,
	}
	for _, v := range valuations {
		s.TotalInvested = s.TotalInvested.Add(v.Invested)
		s.TotalDividends = s.TotalDividends.Add(v.Dividends)
		s.TotalShares = s.TotalShares.Add(v.Shares)
		if mv, ok := v.MarketValue(); ok {
			s.TotalValue = s.TotalValue.Add(mv)
		}
	}
	return s
}

// OverallReturn returns the portfolio gain over invested plus all dividends.
func (s Summary) OverallReturn() Money {
	return s.TotalValue.Sub(s.TotalInvested).Add(s.TotalDividends)
}

// OverallReturnPct returns the portfolio return as a percentage of the
// total invested, undefined when nothing was invested.
func (s Summary) OverallReturnPct() (Percent, bool) {
	if !s.TotalInvested.IsPositive() {
		return 0, false
	}
	ratio := s.OverallReturn().Decimal().Div(s.TotalInvested.Decimal())
	return Percent(100 * ratio.InexactFloat64()), true
}

// TotalValueInclCash returns holdings value plus uninvested cash.
func (s Summary) TotalValueInclCash() Money {
	return s.TotalValue.Add(s.Cash)
}

// AvgCost returns the unadjusted average cost per share across the
// portfolio, undefined without shares.
func (s Summary) AvgCost() (Money, bool) {
	if !s.TotalShares.IsPositive() {
		return Money{}, false
	}
	return s.TotalInvested.Div(s.TotalShares), true
}

// TrueADA returns the portfolio-level dividend-adjusted cost basis per
// share, undefined without shares.
func (s Summary) TrueADA() (Money, bool) {
	if !s.TotalShares.IsPositive() {
		return Money{}, false
	}
	return s.TotalInvested.Sub(s.TotalDividends).Div(s.TotalShares), true
}

// AdjustedBasisImprovement returns how much dividends have lowered the
// break-even price, as a percentage of the unadjusted average cost.
// Undefined when the average cost is undefined or not positive.
func (s Summary) AdjustedBasisImprovement() (Percent, bool) {
	avg, ok := s.AvgCost()
	if !ok || !avg.IsPositive() {
		return 0, false
	}
	ada, _ := s.TrueADA() // defined whenever avg is
	ratio := avg.Sub(ada).Decimal().Div(avg.Decimal())
	return Percent(100 * ratio.InexactFloat64()), true
}
