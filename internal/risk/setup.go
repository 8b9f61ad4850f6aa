package risk

import (
	"math"

	"QuantSentinel/internal/model"
)

// SuggestedStop proposes a protective stop for an actionable signal: the
// latest bar's low for a BUY, its high for a SELL. HOLD has no stop.
func SuggestedStop(sig model.Signal, lastLow, lastHigh float64) *float64 {
	switch sig {
	case model.SignalBuy:
		return &lastLow
	case model.SignalSell:
		return &lastHigh
	default:
		return nil
	}
}

// BuildTradeSetup derives a full entry plan from an actionable signal:
// entry at the latest close, the suggested stop, position sized by the
// fractional-risk rule, and a target at rrRatio times the per-share risk.
// Returns nil when the signal is HOLD or the inputs cannot form a plan;
// a zero-risk stop (stop == entry) yields a zero-share setup rather than
// an error, since the stop here is advisory.
func BuildTradeSetup(sig model.Signal, entry, stop, accountSize, riskPercent, rrRatio float64) *model.TradeSetup {
	if sig != model.SignalBuy && sig != model.SignalSell {
		return nil
	}
	if entry <= 0 || stop <= 0 || accountSize <= 0 || riskPercent <= 0 || rrRatio <= 0 {
		return nil
	}

	riskPerShare := math.Abs(entry - stop)
	var shares int64
	if riskPerShare > 0 {
		shares = int64(math.Floor(accountSize * riskPercent / 100.0 / riskPerShare))
	}

	target := entry + riskPerShare*rrRatio
	if sig == model.SignalSell {
		target = entry - riskPerShare*rrRatio
	}

	return &model.TradeSetup{
		Entry:        entry,
		StopLoss:     stop,
		RiskPerShare: riskPerShare,
		Target:       target,
		Shares:       shares,
		RRRatio:      rrRatio,
	}
}
