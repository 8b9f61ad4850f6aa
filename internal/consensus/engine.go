// Package consensus aggregates the four indicator votes into one recommendation.
package consensus

import "QuantSentinel/internal/model"

// Combine tallies the four indicator signals and applies the consensus rule:
// BUY needs at least two buy votes and strictly more buys than sells, SELL is
// symmetric, and every tie resolves to HOLD. The tally only depends on the
// multiset of votes, so permuting the indicators never changes the outcome.
func Combine(ticker string, latestClose float64, analyses model.Analyses) *model.ConsensusResult {
	var votes model.VoteCounts
	total := 0
	for _, r := range analyses.Ordered() {
		total += r.Score
		switch r.Signal {
		case model.SignalBuy:
			votes.Buy++
		case model.SignalSell:
			votes.Sell++
		default:
			votes.Hold++
		}
	}

	final := model.SignalHold
	switch {
	case votes.Buy >= 2 && votes.Buy > votes.Sell:
		final = model.SignalBuy
	case votes.Sell >= 2 && votes.Sell > votes.Buy:
		final = model.SignalSell
	}

	return &model.ConsensusResult{
		Ticker:      ticker,
		FinalSignal: final,
		Confidence:  confidenceLabel(votes),
		LatestClose: latestClose,
		TotalScore:  total,
		Analyses:    analyses,
		Votes:       votes,
	}
}

// confidenceLabel maps the vote partition to a three-tier label. With four
// voters the only partitions are 4-0-0, 3-1-0, 2-2-0 and 2-1-1; a 2-2 split
// is the lone "mixed" shape.
func confidenceLabel(v model.VoteCounts) string {
	top, second := topTwo(v)
	switch {
	case top == 4:
		return model.ConfidenceStrong
	case top == 2 && second == 2:
		return model.ConfidenceMixed
	default:
		return model.ConfidenceModerate
	}
}

func topTwo(v model.VoteCounts) (top, second int) {
	counts := []int{v.Buy, v.Sell, v.Hold}
	for _, c := range counts {
		if c > top {
			top, second = c, top
		} else if c > second {
			second = c
		}
	}
	return top, second
}
