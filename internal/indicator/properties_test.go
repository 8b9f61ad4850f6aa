package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantSentinel/internal/model"
)

// choppyBars builds a deterministic but irregular series for invariant checks.
func choppyBars(n int) []model.Bar {
	bars := make([]model.Bar, n)
	price := 100.0
	for i := range bars {
		move := 3 * math.Sin(float64(i)*0.7) * math.Cos(float64(i)*0.3)
		price += move
		high := price + 1 + math.Abs(move)/2
		low := price - 1 - math.Abs(move)/2
		bars[i] = bar(i, price-move/2, high, low, price)
	}
	return bars
}

func TestHeikenAshiSeries_EnvelopeInvariants(t *testing.T) {
	bars := choppyBars(80)
	ha := HeikenAshiSeries(bars)
	for i, c := range ha {
		assert.Equal(t, math.Max(bars[i].High, math.Max(c.Open, c.Close)), c.High, "bar %d high", i)
		assert.Equal(t, math.Min(bars[i].Low, math.Min(c.Open, c.Close)), c.Low, "bar %d low", i)
	}
}

func TestBollinger_BandOrdering(t *testing.T) {
	bars := choppyBars(80)
	for _, mult := range []float64{0, 0.5, 2, 3} {
		res, err := AnalyzeBollinger(bars, DefaultBollingerWindow, mult)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Raw["lower"], res.Raw["middle"], "mult %.1f", mult)
		assert.LessOrEqual(t, res.Raw["middle"], res.Raw["upper"], "mult %.1f", mult)
	}
}

func TestMACD_HistogramIdentity(t *testing.T) {
	res, err := AnalyzeMACD(choppyBars(80), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	require.NoError(t, err)
	assert.InDelta(t, res.Raw["macd"]-res.Raw["signal_line"], res.Raw["histogram"], 1e-12)
}

func TestRSI_Bounds(t *testing.T) {
	bars := choppyBars(80)
	for n := DefaultRSIPeriod + 1; n <= len(bars); n += 7 {
		v, err := RSI(bars[:n], DefaultRSIPeriod)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0, "n=%d", n)
		assert.LessOrEqual(t, v, 100.0, "n=%d", n)
	}
}
