package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"QuantSentinel/internal/model"
)

func vote(name string, sig model.Signal) model.IndicatorResult {
	score := 0
	switch sig {
	case model.SignalBuy:
		score = 1
	case model.SignalSell:
		score = -1
	}
	return model.IndicatorResult{Name: name, Signal: sig, Score: score}
}

func analysesOf(ha, bb, macd, rsi model.Signal) model.Analyses {
	return model.Analyses{
		HeikenAshi:     vote("Heiken Ashi", ha),
		BollingerBands: vote("Bollinger Bands", bb),
		MACD:           vote("MACD", macd),
		RSI:            vote("RSI", rsi),
	}
}

func TestCombine_VoteRule(t *testing.T) {
	buy, sell, hold := model.SignalBuy, model.SignalSell, model.SignalHold
	tests := []struct {
		name               string
		ha, bb, macd, rsi  model.Signal
		want               model.Signal
		confidence         string
		score              int
	}{
		{"unanimous buy", buy, buy, buy, buy, buy, model.ConfidenceStrong, 4},
		{"three buys", buy, buy, buy, hold, buy, model.ConfidenceModerate, 3},
		{"two buys one sell one hold", buy, buy, sell, hold, buy, model.ConfidenceModerate, 1},
		{"two buys two holds", buy, buy, hold, hold, buy, model.ConfidenceMixed, 2},
		{"unanimous sell", sell, sell, sell, sell, sell, model.ConfidenceStrong, -4},
		{"two sells one buy one hold", sell, sell, buy, hold, sell, model.ConfidenceModerate, -1},
		{"two buys two sells", buy, buy, sell, sell, hold, model.ConfidenceMixed, 0},
		{"one buy one sell two holds", buy, sell, hold, hold, hold, model.ConfidenceModerate, 0},
		{"single buy", buy, hold, hold, hold, hold, model.ConfidenceModerate, 1},
		{"all hold", hold, hold, hold, hold, hold, model.ConfidenceStrong, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Combine("TEST", 101.5, analysesOf(tt.ha, tt.bb, tt.macd, tt.rsi))
			assert.Equal(t, tt.want, res.FinalSignal)
			assert.Equal(t, tt.confidence, res.Confidence)
			assert.Equal(t, tt.score, res.TotalScore)
			assert.Equal(t, "TEST", res.Ticker)
			assert.Equal(t, 101.5, res.LatestClose)
		})
	}
}

func TestCombine_OrderIndependent(t *testing.T) {
	buy, sell, hold := model.SignalBuy, model.SignalSell, model.SignalHold

	// Same multiset of votes assigned to different indicators.
	a := Combine("X", 100, analysesOf(buy, buy, sell, hold))
	b := Combine("X", 100, analysesOf(sell, buy, hold, buy))
	c := Combine("X", 100, analysesOf(hold, sell, buy, buy))

	for _, res := range []*model.ConsensusResult{b, c} {
		assert.Equal(t, a.FinalSignal, res.FinalSignal)
		assert.Equal(t, a.Confidence, res.Confidence)
		assert.Equal(t, a.TotalScore, res.TotalScore)
		assert.Equal(t, a.Votes, res.Votes)
	}
}

func TestCombine_VoteCounts(t *testing.T) {
	res := Combine("X", 100, analysesOf(model.SignalBuy, model.SignalBuy, model.SignalSell, model.SignalHold))
	assert.Equal(t, model.VoteCounts{Buy: 2, Sell: 1, Hold: 1}, res.Votes)
}
