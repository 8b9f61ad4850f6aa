package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePrimaryTrend_Uptrend(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 12, 11, 12, 13, 14, 15, 14, 13, 14, 15, 16, 17, 16, 15}
	res := AnalyzePrimaryTrend(barsFromCloses(closes))
	assert.Equal(t, "Uptrend", res.Trend)
	assert.Equal(t, "Higher Highs and Higher Lows", res.Reason)
}

func TestAnalyzePrimaryTrend_Downtrend(t *testing.T) {
	closes := []float64{20, 19, 18, 17, 18, 19, 18, 17, 16, 15, 16, 17, 16, 15, 14, 13, 14, 15}
	res := AnalyzePrimaryTrend(barsFromCloses(closes))
	assert.Equal(t, "Downtrend", res.Trend)
	assert.Equal(t, "Lower Highs and Lower Lows", res.Reason)
}

func TestAnalyzePrimaryTrend_MixedStructure(t *testing.T) {
	// Expanding range: higher highs but lower lows.
	closes := []float64{10, 11, 12, 13, 12, 11, 10, 9, 10, 11, 12, 13, 14, 15, 14, 13, 12, 11, 10, 9, 8, 9, 10, 11}
	res := AnalyzePrimaryTrend(barsFromCloses(closes))
	assert.Equal(t, "Sideways", res.Trend)
	assert.Equal(t, "Mixed swing structure", res.Reason)
}

func TestAnalyzePrimaryTrend_FlatSeries(t *testing.T) {
	// Ties never count as swing points.
	res := AnalyzePrimaryTrend(barsFromCloses(flatThenLast(30, 100, 100)))
	assert.Equal(t, "Sideways", res.Trend)
	assert.Equal(t, "Insufficient swing points", res.Reason)
}

func TestAnalyzePrimaryTrend_ShortSeries(t *testing.T) {
	res := AnalyzePrimaryTrend(barsFromCloses([]float64{10, 11, 12}))
	assert.Equal(t, "Sideways", res.Trend)
}

func TestFindSwings_UniqueExtremesOnly(t *testing.T) {
	peaks := []float64{10, 11, 12, 13, 12, 11, 10, 9, 10, 11}
	assert.Equal(t, []int{3}, findSwings(peaks, true))

	troughs := []float64{13, 12, 11, 10, 9, 10, 11, 12, 13, 14}
	assert.Equal(t, []int{4}, findSwings(troughs, false))

	// A flat-topped peak is not a swing high.
	plateau := []float64{10, 11, 12, 13, 13, 12, 11, 10, 9, 8}
	assert.Empty(t, findSwings(plateau, true))
}
