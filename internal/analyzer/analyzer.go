// Package analyzer orchestrates one ticker analysis: preprocess the series,
// run the four indicators, and combine their votes into a consensus result.
package analyzer

import (
	"context"
	"sync"

	"QuantSentinel/internal/consensus"
	"QuantSentinel/internal/indicator"
	"QuantSentinel/internal/logger"
	"QuantSentinel/internal/model"
	"QuantSentinel/internal/provider"
	"QuantSentinel/internal/risk"
	"QuantSentinel/internal/series"
)

// Params are the tunable indicator settings for a run.
type Params struct {
	BollingerWindow int
	BollingerMult   float64
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	RSIPeriod       int
	LookbackDays    int
}

// DefaultParams returns the standard settings (20/2 bands, 12/26/9 MACD, RSI 14).
func DefaultParams() Params {
	return Params{
		BollingerWindow: indicator.DefaultBollingerWindow,
		BollingerMult:   indicator.DefaultBollingerMult,
		MACDFast:        indicator.DefaultMACDFast,
		MACDSlow:        indicator.DefaultMACDSlow,
		MACDSignal:      indicator.DefaultMACDSignal,
		RSIPeriod:       indicator.DefaultRSIPeriod,
		LookbackDays:    200,
	}
}

// MinBars is the series length needed for every indicator in the run.
func (p Params) MinBars() int {
	min := p.BollingerWindow
	if n := p.MACDSlow + p.MACDSignal; n > min {
		min = n
	}
	if n := p.RSIPeriod + 1; n > min {
		min = n
	}
	return min
}

// Analyzer runs ticker analyses against a price-history provider.
type Analyzer struct {
	provider provider.Provider
	params   Params
}

// New creates an Analyzer.
func New(p provider.Provider, params Params) *Analyzer {
	return &Analyzer{provider: p, params: params}
}

// Analyze fetches history for a ticker and computes its consensus result.
// Provider failures surface as upstream-data errors with ticker context.
func (a *Analyzer) Analyze(ctx context.Context, ticker string) (*model.ConsensusResult, error) {
	bars, err := a.provider.FetchDailyBars(ctx, ticker, a.params.LookbackDays)
	if err != nil {
		return nil, model.WrapError(model.KindUpstreamData, err,
			"fetch daily bars from %s: %v", a.provider.Name(), err).WithTicker(ticker)
	}
	return a.AnalyzeBars(ticker, bars)
}

// AnalyzeBars computes the consensus result for an already-fetched series.
// All four indicators must succeed; the first failure aborts the run with the
// specific error. The output analyses keep the canonical order Heiken-Ashi,
// Bollinger, MACD, RSI even though the tally itself is order-independent.
func (a *Analyzer) AnalyzeBars(ticker string, bars []model.Bar) (*model.ConsensusResult, error) {
	if err := series.Validate(bars, a.params.MinBars()); err != nil {
		return nil, withTicker(err, ticker)
	}

	var analyses model.Analyses
	var err error

	if analyses.HeikenAshi, err = indicator.AnalyzeHeikenAshi(bars); err != nil {
		return nil, withTicker(err, ticker)
	}
	if analyses.BollingerBands, err = indicator.AnalyzeBollinger(bars, a.params.BollingerWindow, a.params.BollingerMult); err != nil {
		return nil, withTicker(err, ticker)
	}
	if analyses.MACD, err = indicator.AnalyzeMACD(bars, a.params.MACDFast, a.params.MACDSlow, a.params.MACDSignal); err != nil {
		return nil, withTicker(err, ticker)
	}
	if analyses.RSI, err = indicator.AnalyzeRSI(bars, a.params.RSIPeriod); err != nil {
		return nil, withTicker(err, ticker)
	}

	latest := bars[len(bars)-1]
	result := consensus.Combine(ticker, latest.Close, analyses)
	result.PrimaryTrend = indicator.AnalyzePrimaryTrend(bars).Trend
	result.SuggestedStop = risk.SuggestedStop(result.FinalSignal, latest.Low, latest.High)
	return result, nil
}

// BatchEntry is one ticker's outcome in a batch run: a result or an error.
type BatchEntry struct {
	Result *model.ConsensusResult
	Err    error
}

// BatchAnalyze analyzes each ticker independently and concurrently. One
// ticker's failure never aborts its siblings; failures are captured in the
// returned map as per-ticker error entries.
func (a *Analyzer) BatchAnalyze(ctx context.Context, tickers []string) map[string]BatchEntry {
	out := make(map[string]BatchEntry, len(tickers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			res, err := a.Analyze(ctx, ticker)
			if err != nil {
				logger.Get().Warnw("ticker analysis failed", "ticker", ticker, "error", err)
			}
			mu.Lock()
			out[ticker] = BatchEntry{Result: res, Err: err}
			mu.Unlock()
		}(ticker)
	}
	wg.Wait()
	return out
}

func withTicker(err error, ticker string) error {
	if me, ok := err.(*model.Error); ok {
		return me.WithTicker(ticker)
	}
	return err
}
