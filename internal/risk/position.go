// Package risk contains the fixed-fractional position sizing calculator and
// the trade P&L accounting. Both are pure functions over scalar inputs.
package risk

import (
	"math"

	"QuantSentinel/internal/model"
)

// CalculatePositionSize implements the fractional risk model: risk a fixed
// percentage of the account per trade and size the position so that a stop-out
// loses exactly that amount. All inputs must be positive, and the entry and
// stop prices must differ (zero risk per share is undefined).
func CalculatePositionSize(accountSize, riskPercent, entryPrice, stopLossPrice float64) (*model.PositionSizePlan, error) {
	switch {
	case accountSize <= 0:
		return nil, model.NewError(model.KindValidation, "account size must be positive, got %.2f", accountSize)
	case riskPercent <= 0:
		return nil, model.NewError(model.KindValidation, "risk percent must be positive, got %.2f", riskPercent)
	case entryPrice <= 0:
		return nil, model.NewError(model.KindValidation, "entry price must be positive, got %.2f", entryPrice)
	case stopLossPrice <= 0:
		return nil, model.NewError(model.KindValidation, "stop loss price must be positive, got %.2f", stopLossPrice)
	case entryPrice == stopLossPrice:
		return nil, model.NewError(model.KindValidation,
			"entry price and stop loss price cannot be equal (%.2f): risk per share is zero", entryPrice)
	}

	riskAmount := accountSize * riskPercent / 100.0
	riskPerShare := math.Abs(entryPrice - stopLossPrice)
	maxShares := int64(math.Floor(riskAmount / riskPerShare))

	return &model.PositionSizePlan{
		RiskAmount:      riskAmount,
		RiskPerShare:    riskPerShare,
		MaxShares:       maxShares,
		TotalInvestment: float64(maxShares) * entryPrice,
	}, nil
}
