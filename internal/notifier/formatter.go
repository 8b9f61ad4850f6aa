package notifier

import (
	"fmt"
	"strings"
	"time"

	"QuantSentinel/internal/model"
	"QuantSentinel/internal/risk"
)

func signalEmoji(sig model.Signal) string {
	switch sig {
	case model.SignalBuy:
		return "🟢"
	case model.SignalSell:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatAnalysisReport formats a consensus run into a Telegram message.
func FormatAnalysisReport(res *model.ConsensusResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", res.Ticker, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s <b>%s</b> — %s\n", signalEmoji(res.FinalSignal), res.FinalSignal, res.Confidence))
	b.WriteString(fmt.Sprintf("Close: %.2f | Score: %+d | Trend: %s\n\n", res.LatestClose, res.TotalScore, res.PrimaryTrend))

	b.WriteString("<b>Indicator breakdown:</b>\n")
	for _, ir := range res.Analyses.Ordered() {
		b.WriteString(fmt.Sprintf("  %s %s: %s (%+d)\n", signalEmoji(ir.Signal), ir.Name, ir.Signal, ir.Score))
		if ir.Details != "" {
			b.WriteString(fmt.Sprintf("     %s\n", ir.Details))
		}
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Votes: %d buy / %d sell / %d hold\n",
		res.Votes.Buy, res.Votes.Sell, res.Votes.Hold))

	if res.SuggestedStop != nil {
		b.WriteString(fmt.Sprintf("\nSuggested stop: %.2f\n", *res.SuggestedStop))
	}
	if s := res.Setup; s != nil {
		b.WriteString("\n<b>Trade setup:</b>\n")
		b.WriteString(fmt.Sprintf("  Entry: %.2f | Stop: %.2f | Target: %.2f\n", s.Entry, s.StopLoss, s.Target))
		b.WriteString(fmt.Sprintf("  Risk/share: %.2f | Size: %d shares | R:R 1:%.0f\n", s.RiskPerShare, s.Shares, s.RRRatio))
	}

	return b.String()
}

// FormatBatchSummary formats a one-line-per-ticker digest of a batch run.
func FormatBatchSummary(results []*model.ConsensusResult, failures map[string]error) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗓 <b>Daily scan</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, res := range results {
		b.WriteString(fmt.Sprintf("%s %s: %s (%+d) — %s\n",
			signalEmoji(res.FinalSignal), res.Ticker, res.FinalSignal, res.TotalScore, res.PrimaryTrend))
	}
	if len(failures) > 0 {
		b.WriteString("\n⚠️ Failed:\n")
		for ticker, err := range failures {
			b.WriteString(fmt.Sprintf("  %s: %v\n", ticker, err))
		}
	}
	return b.String()
}

// FormatJournal formats the paper trade journal for display.
func FormatJournal(trades []model.TradeRecord) string {
	if len(trades) == 0 {
		return "📒 Journal is empty. Use /open to record a paper trade."
	}
	var b strings.Builder
	b.WriteString("📒 <b>Paper trade journal</b>\n\n")
	for _, t := range trades {
		b.WriteString(fmt.Sprintf("#%d %s %s @ %.2f (stop %.2f) — %s",
			t.ID, t.Type, t.Symbol, t.Entry, t.StopLoss, t.Status))
		if pnl, ok := risk.PnL(t); ok {
			b.WriteString(fmt.Sprintf(", P&L %+.2f", pnl))
		} else if t.Status == model.TradeClosed {
			b.WriteString(", P&L not applicable")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPositionPlan formats a position sizing calculation.
func FormatPositionPlan(plan *model.PositionSizePlan) string {
	var b strings.Builder
	b.WriteString("🧮 <b>Position size</b>\n\n")
	b.WriteString(fmt.Sprintf("Risk amount: %.2f\n", plan.RiskAmount))
	b.WriteString(fmt.Sprintf("Risk per share: %.2f\n", plan.RiskPerShare))
	b.WriteString(fmt.Sprintf("Max shares: %d\n", plan.MaxShares))
	b.WriteString(fmt.Sprintf("Total investment: %.2f\n", plan.TotalInvestment))
	return b.String()
}

// FormatWatchlist formats the tracked symbols.
func FormatWatchlist(symbols []string) string {
	if len(symbols) == 0 {
		return "👀 Watchlist is empty. Use /watch SYM1 SYM2 ... to set it."
	}
	return "👀 <b>Watchlist:</b> " + strings.Join(symbols, ", ")
}
