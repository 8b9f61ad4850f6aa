package indicator

import (
	"fmt"

	"QuantSentinel/internal/model"
	"QuantSentinel/internal/series"
)

// AnalyzeBollinger computes Bollinger Bands over the trailing window and
// classifies the latest close. The band width uses the sample standard
// deviation (ddof=1), not the population form.
func AnalyzeBollinger(bars []model.Bar, window int, mult float64) (model.IndicatorResult, error) {
	if window < 2 {
		return model.IndicatorResult{}, model.NewError(model.KindValidation,
			"bollinger window must be at least 2, got %d", window)
	}
	if len(bars) < window {
		return model.IndicatorResult{}, model.NewError(model.KindInsufficientData,
			"bollinger bands need at least %d bars, got %d", window, len(bars))
	}

	closes := series.Closes(bars)
	middle := sma(closes, window)
	std := sampleStdDev(closes, window)
	upper := middle + mult*std
	lower := middle - mult*std
	price := closes[len(closes)-1]

	res := model.IndicatorResult{
		Name:   "Bollinger Bands",
		Signal: model.SignalHold,
		Raw: map[string]float64{
			"upper":  upper,
			"middle": middle,
			"lower":  lower,
			"price":  price,
		},
	}

	switch {
	case price > upper:
		res.Signal = model.SignalSell
		res.Score = -1
		res.Details = fmt.Sprintf("Close %.2f above upper band %.2f - Overbought", price, upper)
	case price < lower:
		res.Signal = model.SignalBuy
		res.Score = 1
		res.Details = fmt.Sprintf("Close %.2f below lower band %.2f - Oversold", price, lower)
	default:
		pct := 50.0
		if upper > lower {
			pct = (price - lower) / (upper - lower) * 100.0
		}
		res.Raw["position_pct"] = pct
		res.Details = fmt.Sprintf("Within bands at %.1f%% of band width - Mean reversion likely", pct)
	}
	return res, nil
}
