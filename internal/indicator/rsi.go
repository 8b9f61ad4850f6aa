package indicator

import (
	"fmt"

	"QuantSentinel/internal/model"
	"QuantSentinel/internal/series"
)

// RSI computes the Wilder-smoothed relative strength index over the given
// period. Requires at least period+1 bars. When the average loss over the
// window is zero the RSI saturates at 100.
func RSI(bars []model.Bar, period int) (float64, error) {
	if period <= 0 {
		return 0, model.NewError(model.KindValidation, "rsi period must be positive, got %d", period)
	}
	if len(bars) < period+1 {
		return 0, model.NewError(model.KindInsufficientData,
			"rsi needs at least %d bars, got %d", period+1, len(bars))
	}

	closes := series.Closes(bars)

	// Seed: simple average gain/loss over the first period changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for the remaining bars, oldest to newest.
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}

// AnalyzeRSI classifies the RSI value: oversold below 30, overbought above 70.
func AnalyzeRSI(bars []model.Bar, period int) (model.IndicatorResult, error) {
	value, err := RSI(bars, period)
	if err != nil {
		return model.IndicatorResult{}, err
	}

	res := model.IndicatorResult{
		Name:   "RSI",
		Signal: model.SignalHold,
		Raw:    map[string]float64{"rsi_value": value},
	}

	switch {
	case value < 30:
		res.Signal = model.SignalBuy
		res.Score = 1
		res.Details = fmt.Sprintf("RSI %.1f - Oversold condition", value)
	case value > 70:
		res.Signal = model.SignalSell
		res.Score = -1
		res.Details = fmt.Sprintf("RSI %.1f - Overbought condition", value)
	case value > 50:
		res.Details = fmt.Sprintf("RSI %.1f - Bullish momentum", value)
	default:
		res.Details = fmt.Sprintf("RSI %.1f - Bearish momentum", value)
	}
	return res, nil
}
