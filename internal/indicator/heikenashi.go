package indicator

import (
	"math"

	"QuantSentinel/internal/model"
)

// wickEpsilon absorbs floating-point noise when testing whether a Heiken-Ashi
// candle has no wick on the decisive side.
const wickEpsilon = 1e-9

// minHeikenAshiBars is the minimum series length for the recurrence to say
// anything useful about the latest candle.
const minHeikenAshiBars = 2

// HeikenAshiSeries computes the smoothed candle series. The HA open carries a
// sequential recurrence (seeded from the first bar's open/close midpoint), so
// the loop must run oldest-to-newest.
func HeikenAshiSeries(bars []model.Bar) []model.HeikenAshiBar {
	out := make([]model.HeikenAshiBar, len(bars))
	for i, b := range bars {
		haClose := (b.Open + b.High + b.Low + b.Close) / 4.0

		var haOpen float64
		if i == 0 {
			haOpen = (b.Open + b.Close) / 2.0
		} else {
			haOpen = (out[i-1].Open + out[i-1].Close) / 2.0
		}

		out[i] = model.HeikenAshiBar{
			Time:  b.Time,
			Open:  haOpen,
			Close: haClose,
			High:  math.Max(b.High, math.Max(haOpen, haClose)),
			Low:   math.Min(b.Low, math.Min(haOpen, haClose)),
		}
	}
	return out
}

// AnalyzeHeikenAshi classifies the latest Heiken-Ashi candle. A bullish candle
// with no lower wick is a decisive BUY; a bearish candle with no upper wick is
// a decisive SELL; everything else holds.
func AnalyzeHeikenAshi(bars []model.Bar) (model.IndicatorResult, error) {
	if len(bars) < minHeikenAshiBars {
		return model.IndicatorResult{}, model.NewError(model.KindInsufficientData,
			"heiken-ashi needs at least %d bars, got %d", minHeikenAshiBars, len(bars))
	}

	ha := HeikenAshiSeries(bars)
	latest := ha[len(ha)-1]

	res := model.IndicatorResult{
		Name:   "Heiken Ashi",
		Signal: model.SignalHold,
		Raw: map[string]float64{
			"ha_open":  latest.Open,
			"ha_high":  latest.High,
			"ha_low":   latest.Low,
			"ha_close": latest.Close,
		},
	}

	switch {
	case latest.Close > latest.Open: // bullish
		if math.Abs(latest.Open-latest.Low) < wickEpsilon {
			res.Signal = model.SignalBuy
			res.Score = 1
			res.Details = "Decisive Bullish Candle - Strong upward momentum"
		} else {
			res.Details = "Bullish candle with lower wick - Mixed signals"
		}
	case latest.Close < latest.Open: // bearish
		if math.Abs(latest.Open-latest.High) < wickEpsilon {
			res.Signal = model.SignalSell
			res.Score = -1
			res.Details = "Decisive Bearish Candle - Strong downward momentum"
		} else {
			res.Details = "Bearish candle with upper wick - Mixed signals"
		}
	default:
		res.Details = "Doji candle - Market indecision"
	}
	return res, nil
}
