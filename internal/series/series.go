// Package series validates raw OHLC histories before indicator computation.
package series

import (
	"QuantSentinel/internal/model"
)

// Validate checks that bars form a well-formed ascending daily series with at
// least minLen entries. Missing sessions are fine; the indicators operate on
// the bars present, so no gap filling or interpolation is performed.
func Validate(bars []model.Bar, minLen int) error {
	if len(bars) < minLen {
		return model.NewError(model.KindInsufficientData,
			"need at least %d bars, got %d", minLen, len(bars))
	}
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return model.NewError(model.KindInvalidBar,
				"bar %d (%s): non-positive price", i, b.Time.Format("2006-01-02"))
		}
		if b.High < b.Low {
			return model.NewError(model.KindInvalidBar,
				"bar %d (%s): high %.4f below low %.4f", i, b.Time.Format("2006-01-02"), b.High, b.Low)
		}
		if b.High < b.Open || b.High < b.Close {
			return model.NewError(model.KindInvalidBar,
				"bar %d (%s): high %.4f below body", i, b.Time.Format("2006-01-02"), b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			return model.NewError(model.KindInvalidBar,
				"bar %d (%s): low %.4f above body", i, b.Time.Format("2006-01-02"), b.Low)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return model.NewError(model.KindInvalidBar,
				"bar %d (%s): timestamp not after previous bar", i, b.Time.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes extracts the close column from a series.
func Closes(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
