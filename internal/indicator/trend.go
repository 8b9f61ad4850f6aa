package indicator

import "QuantSentinel/internal/model"

// TrendResult classifies the swing structure of a price series.
type TrendResult struct {
	Trend  string `json:"trend"`
	Reason string `json:"reason"`
}

const swingWindow = 3

// findSwings returns indices of local extremes: bars that are the unique
// maximum (or minimum) of the surrounding 2*swingWindow+1 values.
func findSwings(values []float64, high bool) []int {
	var idxs []int
	for i := swingWindow; i < len(values)-swingWindow; i++ {
		center := values[i]
		extreme := true
		ties := 0
		for j := i - swingWindow; j <= i+swingWindow; j++ {
			if high && values[j] > center {
				extreme = false
				break
			}
			if !high && values[j] < center {
				extreme = false
				break
			}
			if values[j] == center {
				ties++
			}
		}
		if extreme && ties == 1 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// AnalyzePrimaryTrend inspects the last two swing highs and lows: higher highs
// plus higher lows is an uptrend, lower highs plus lower lows a downtrend,
// anything else sideways. Informational only; it does not vote in consensus.
func AnalyzePrimaryTrend(bars []model.Bar) TrendResult {
	highsVals := make([]float64, len(bars))
	lowsVals := make([]float64, len(bars))
	for i, b := range bars {
		highsVals[i] = b.High
		lowsVals[i] = b.Low
	}

	highs := findSwings(highsVals, true)
	lows := findSwings(lowsVals, false)
	if len(highs) < 2 || len(lows) < 2 {
		return TrendResult{Trend: "Sideways", Reason: "Insufficient swing points"}
	}

	h0, h1 := highsVals[highs[len(highs)-2]], highsVals[highs[len(highs)-1]]
	l0, l1 := lowsVals[lows[len(lows)-2]], lowsVals[lows[len(lows)-1]]

	switch {
	case h1 > h0 && l1 > l0:
		return TrendResult{Trend: "Uptrend", Reason: "Higher Highs and Higher Lows"}
	case h1 < h0 && l1 < l0:
		return TrendResult{Trend: "Downtrend", Reason: "Lower Highs and Lower Lows"}
	default:
		return TrendResult{Trend: "Sideways", Reason: "Mixed swing structure"}
	}
}
