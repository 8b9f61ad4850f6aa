package model

import "time"

// TradeType is the direction of a journal trade.
type TradeType string

const (
	TradeLong  TradeType = "LONG"
	TradeShort TradeType = "SHORT"
)

// TradeStatus is the lifecycle state of a journal trade.
type TradeStatus string

const (
	TradeOpen   TradeStatus = "OPEN"
	TradeClosed TradeStatus = "CLOSED"
)

// TradeRecord is one entry in the paper-trade journal.
// ExitPrice is nil while the trade is still open.
type TradeRecord struct {
	ID        int64       `json:"id"`
	Symbol    string      `json:"ticker_symbol"`
	EnteredAt time.Time   `json:"entry_timestamp"`
	Type      TradeType   `json:"trade_type"`
	Entry     float64     `json:"entry_price"`
	StopLoss  float64     `json:"stop_loss_price"`
	Status    TradeStatus `json:"status"`
	ExitPrice *float64    `json:"exit_price,omitempty"`
}

// PositionSizePlan is the result of the fixed-fractional risk calculation.
type PositionSizePlan struct {
	RiskAmount      float64 `json:"risk_amount"`
	RiskPerShare    float64 `json:"risk_per_share"`
	MaxShares       int64   `json:"max_shares"`
	TotalInvestment float64 `json:"total_investment"`
}
