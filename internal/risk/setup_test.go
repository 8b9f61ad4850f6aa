package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantSentinel/internal/model"
)

func TestSuggestedStop(t *testing.T) {
	stop := SuggestedStop(model.SignalBuy, 98, 104)
	require.NotNil(t, stop)
	assert.Equal(t, 98.0, *stop)

	stop = SuggestedStop(model.SignalSell, 98, 104)
	require.NotNil(t, stop)
	assert.Equal(t, 104.0, *stop)

	assert.Nil(t, SuggestedStop(model.SignalHold, 98, 104))
}

func TestBuildTradeSetup_Long(t *testing.T) {
	// 1% of 10000 = 100 at risk, 2 per share -> 50 shares, target 3R away.
	setup := BuildTradeSetup(model.SignalBuy, 100, 98, 10000, 1, 3)
	require.NotNil(t, setup)
	assert.InDelta(t, 100.0, setup.Entry, 1e-9)
	assert.InDelta(t, 98.0, setup.StopLoss, 1e-9)
	assert.InDelta(t, 2.0, setup.RiskPerShare, 1e-9)
	assert.InDelta(t, 106.0, setup.Target, 1e-9)
	assert.Equal(t, int64(50), setup.Shares)
}

func TestBuildTradeSetup_ShortTargetBelowEntry(t *testing.T) {
	setup := BuildTradeSetup(model.SignalSell, 100, 102, 10000, 1, 3)
	require.NotNil(t, setup)
	assert.InDelta(t, 2.0, setup.RiskPerShare, 1e-9)
	assert.InDelta(t, 94.0, setup.Target, 1e-9)
	assert.Equal(t, int64(50), setup.Shares)
}

func TestBuildTradeSetup_ZeroRiskStop(t *testing.T) {
	// Advisory stop at the entry: no position, target collapses to entry.
	setup := BuildTradeSetup(model.SignalBuy, 100, 100, 10000, 1, 3)
	require.NotNil(t, setup)
	assert.Equal(t, int64(0), setup.Shares)
	assert.InDelta(t, 100.0, setup.Target, 1e-9)
}

func TestBuildTradeSetup_Nil(t *testing.T) {
	assert.Nil(t, BuildTradeSetup(model.SignalHold, 100, 98, 10000, 1, 3))
	assert.Nil(t, BuildTradeSetup(model.SignalBuy, 0, 98, 10000, 1, 3))
	assert.Nil(t, BuildTradeSetup(model.SignalBuy, 100, 98, 10000, 0, 3))
	assert.Nil(t, BuildTradeSetup(model.SignalBuy, 100, 98, 10000, 1, 0))
}
