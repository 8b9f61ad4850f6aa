// Package provider fetches daily OHLC histories from market-data sources.
package provider

import (
	"context"
	"time"

	"QuantSentinel/internal/model"
)

// Provider returns ascending-chronological daily bars for a ticker. Caching,
// rate limiting, and retries are the provider's concern; the analysis core
// surfaces fetch failures as upstream-data errors without retrying.
type Provider interface {
	FetchDailyBars(ctx context.Context, ticker string, days int) ([]model.Bar, error)
	Name() string
}

// Mock returns controllable fixed data for development and testing.
type Mock struct {
	Bars map[string][]model.Bar
	Errs map[string]error
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) FetchDailyBars(_ context.Context, ticker string, days int) ([]model.Bar, error) {
	if err, ok := m.Errs[ticker]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[ticker]; ok {
		return bars, nil
	}
	return GenerateBars(100.0, days), nil
}

// GenerateBars builds a deterministic gently-trending daily series around a
// base price, ending today.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
