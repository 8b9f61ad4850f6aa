package indicator

import (
	"fmt"

	"QuantSentinel/internal/model"
	"QuantSentinel/internal/series"
)

// AnalyzeMACD computes MACD (fast/slow EMA difference with a signal-line EMA)
// and signals only on a crossover at the latest bar. The absolute position of
// MACD relative to its signal line without a fresh crossover is momentum
// context, not a trade signal.
func AnalyzeMACD(bars []model.Bar, fast, slow, signal int) (model.IndicatorResult, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 || fast >= slow {
		return model.IndicatorResult{}, model.NewError(model.KindValidation,
			"invalid macd periods %d/%d/%d", fast, slow, signal)
	}
	// slow+signal bars yield two signal-line points, the minimum for
	// detecting a crossover on the latest bar.
	minBars := slow + signal
	if len(bars) < minBars {
		return model.IndicatorResult{}, model.NewError(model.KindInsufficientData,
			"macd needs at least %d bars, got %d", minBars, len(bars))
	}

	closes := series.Closes(bars)
	fastEMA := emaSeries(closes, fast) // aligned to closes[fast-1:]
	slowEMA := emaSeries(closes, slow) // aligned to closes[slow-1:]

	offset := slow - fast
	macdLine := make([]float64, len(slowEMA))
	for i := range slowEMA {
		macdLine[i] = fastEMA[i+offset] - slowEMA[i]
	}
	signalLine := emaSeries(macdLine, signal) // aligned to macdLine[signal-1:]

	n := len(signalLine)
	currMACD := macdLine[len(macdLine)-1]
	prevMACD := macdLine[len(macdLine)-2]
	currSignal := signalLine[n-1]
	prevSignal := signalLine[n-2]
	currDiff := currMACD - currSignal
	prevDiff := prevMACD - prevSignal

	res := model.IndicatorResult{
		Name:   "MACD",
		Signal: model.SignalHold,
		Raw: map[string]float64{
			"macd":        currMACD,
			"signal_line": currSignal,
			"histogram":   currDiff,
		},
	}

	switch {
	case currDiff > 0 && prevDiff <= 0:
		res.Signal = model.SignalBuy
		res.Score = 1
		res.Details = "MACD crossed above signal line - Bullish crossover"
	case currDiff < 0 && prevDiff >= 0:
		res.Signal = model.SignalSell
		res.Score = -1
		res.Details = "MACD crossed below signal line - Bearish crossover"
	case currDiff > 0:
		res.Details = fmt.Sprintf("MACD above signal line (%.4f) - Bullish momentum", currDiff)
	default:
		res.Details = fmt.Sprintf("MACD below signal line (%.4f) - Bearish momentum", currDiff)
	}
	return res, nil
}
