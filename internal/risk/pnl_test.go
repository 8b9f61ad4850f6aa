package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"QuantSentinel/internal/model"
)

func closedTrade(tt model.TradeType, entry, exit float64) model.TradeRecord {
	return model.TradeRecord{
		Symbol:    "AAPL",
		Type:      tt,
		Entry:     entry,
		Status:    model.TradeClosed,
		ExitPrice: &exit,
	}
}

func TestPnL_Long(t *testing.T) {
	pnl, ok := PnL(closedTrade(model.TradeLong, 100, 120))
	assert.True(t, ok)
	assert.InDelta(t, 20.0, pnl, 1e-9)

	pnl, ok = PnL(closedTrade(model.TradeLong, 100, 80))
	assert.True(t, ok)
	assert.InDelta(t, -20.0, pnl, 1e-9)
}

func TestPnL_Short(t *testing.T) {
	pnl, ok := PnL(closedTrade(model.TradeShort, 100, 80))
	assert.True(t, ok)
	assert.InDelta(t, 20.0, pnl, 1e-9)

	pnl, ok = PnL(closedTrade(model.TradeShort, 100, 120))
	assert.True(t, ok)
	assert.InDelta(t, -20.0, pnl, 1e-9)
}

func TestPnL_Undefined(t *testing.T) {
	open := model.TradeRecord{Type: model.TradeLong, Entry: 100, Status: model.TradeOpen}
	_, ok := PnL(open)
	assert.False(t, ok)

	// CLOSED without an exit price is still undefined, never zero profit.
	closedNoExit := model.TradeRecord{Type: model.TradeLong, Entry: 100, Status: model.TradeClosed}
	_, ok = PnL(closedNoExit)
	assert.False(t, ok)
}
