package risk

import "QuantSentinel/internal/model"

// PnL returns the realized profit-and-loss of a journal trade. P&L is only
// defined for a CLOSED trade with a recorded exit price; otherwise ok is
// false and the value must not be interpreted as zero profit.
func PnL(rec model.TradeRecord) (pnl float64, ok bool) {
	if rec.Status != model.TradeClosed || rec.ExitPrice == nil {
		return 0, false
	}
	if rec.Type == model.TradeShort {
		return rec.Entry - *rec.ExitPrice, true
	}
	return *rec.ExitPrice - rec.Entry, true
}
