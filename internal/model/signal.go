package model

// Signal is a discrete trading recommendation.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Confidence labels derived from the vote distribution.
const (
	ConfidenceStrong   = "Strong consensus"
	ConfidenceModerate = "Moderate consensus"
	ConfidenceMixed    = "Mixed signals - no clear consensus"
)

// IndicatorResult is the output of a single indicator analysis.
type IndicatorResult struct {
	Name    string             `json:"name"`
	Signal  Signal             `json:"signal"`
	Score   int                `json:"score"`
	Details string             `json:"details"`
	Raw     map[string]float64 `json:"raw_values,omitempty"`
}

// Analyses groups the four indicator results in canonical presentation order:
// Heiken-Ashi, Bollinger Bands, MACD, RSI.
type Analyses struct {
	HeikenAshi     IndicatorResult `json:"heiken_ashi"`
	BollingerBands IndicatorResult `json:"bollinger_bands"`
	MACD           IndicatorResult `json:"macd"`
	RSI            IndicatorResult `json:"rsi"`
}

// Ordered returns the indicator results in canonical order.
func (a Analyses) Ordered() []IndicatorResult {
	return []IndicatorResult{a.HeikenAshi, a.BollingerBands, a.MACD, a.RSI}
}

// VoteCounts tallies per-signal votes across the four indicators.
type VoteCounts struct {
	Buy  int `json:"buy_votes"`
	Sell int `json:"sell_votes"`
	Hold int `json:"hold_votes"`
}

// TradeSetup is a risk-managed entry plan derived from a BUY or SELL
// consensus: entry at the latest close, stop at the suggested level, target
// at the configured risk-reward multiple.
type TradeSetup struct {
	Entry        float64 `json:"entry_price"`
	StopLoss     float64 `json:"stop_loss_price"`
	RiskPerShare float64 `json:"risk_per_share"`
	Target       float64 `json:"target_price"`
	Shares       int64   `json:"position_size"`
	RRRatio      float64 `json:"rr_ratio"`
}

// ConsensusResult is the final output of one ticker analysis.
// The JSON shape is the contract surface consumed by API/UI callers.
// SuggestedStop and Setup are only present for actionable signals.
type ConsensusResult struct {
	Ticker        string      `json:"ticker"`
	FinalSignal   Signal      `json:"final_signal"`
	Confidence    string      `json:"confidence"`
	LatestClose   float64     `json:"latest_close_price"`
	TotalScore    int         `json:"total_score"`
	PrimaryTrend  string      `json:"primary_trend"`
	SuggestedStop *float64    `json:"suggested_stop_loss,omitempty"`
	Setup         *TradeSetup `json:"trade_setup,omitempty"`
	Analyses      Analyses    `json:"analyses"`
	Votes         VoteCounts  `json:"signal_summary"`
}
