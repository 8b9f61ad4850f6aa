// Package indicator holds the pure technical-indicator computations.
// Every analysis is a function of an already-validated bar series and
// returns a model.IndicatorResult; none of them mutate their input.
package indicator

import "math"

// Default indicator parameters, matching the common textbook settings.
const (
	DefaultBollingerWindow = 20
	DefaultBollingerMult   = 2.0
	DefaultMACDFast        = 12
	DefaultMACDSlow        = 26
	DefaultMACDSignal      = 9
	DefaultRSIPeriod       = 14
)

// sma returns the simple average of the last n values.
func sma(values []float64, n int) float64 {
	sum := 0.0
	for i := len(values) - n; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(n)
}

// sampleStdDev returns the sample standard deviation (ddof=1) of the last
// n values. Callers must guarantee n >= 2 and len(values) >= n.
func sampleStdDev(values []float64, n int) float64 {
	mean := sma(values, n)
	s := 0.0
	for i := len(values) - n; i < len(values); i++ {
		d := values[i] - mean
		s += d * d
	}
	return math.Sqrt(s / float64(n-1))
}

// emaSeries computes the exponential moving average of values with the given
// period. The seed is the SMA of the first period values, so the result is
// aligned to values[period-1:]; result[i] corresponds to values[i+period-1].
// Kept as an explicit left-to-right fold; the seed value and evaluation order
// change the numbers.
func emaSeries(values []float64, period int) []float64 {
	if len(values) < period || period <= 0 {
		return nil
	}
	out := make([]float64, 0, len(values)-period+1)
	seed := 0.0
	for _, v := range values[:period] {
		seed += v
	}
	out = append(out, seed/float64(period))

	alpha := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		prev := out[len(out)-1]
		out = append(out, values[i]*alpha+prev*(1.0-alpha))
	}
	return out
}
