// Package risk implements the quantitative risk engine: position sizing,
// Value-at-Risk, Monte Carlo price simulation and ATR-based stops.
package risk

import (
	"fmt"
	"math"

	"QuantSentinel/internal/model"
)

// PositionSize computes a position size that caps the loss at stop-out to
// riskPct percent of the account.
func PositionSize(accountSize, riskPct, entryPrice, stopPrice float64) (*model.PositionPlan, error) {
	if accountSize <= 0 {
		return nil, fmt.Errorf("%w: account size must be positive, got %g", model.ErrInvalidInput, accountSize)
	}
	if riskPct <= 0 || riskPct > 100 {
		return nil, fmt.Errorf("%w: risk percentage must be in (0,100], got %g", model.ErrInvalidInput, riskPct)
	}
	if entryPrice <= 0 {
		return nil, fmt.Errorf("%w: entry price must be positive, got %g", model.ErrInvalidInput, entryPrice)
	}

	riskAmount := accountSize * riskPct / 100
	perShare := math.Abs(entryPrice - stopPrice)
	if perShare == 0 {
		return nil, fmt.Errorf("%w: entry price equals stop price (%g)", model.ErrNumericDegeneracy, entryPrice)
	}

	size := riskAmount / perShare
	return &model.PositionPlan{
		PositionSize: size,
		TotalValue:   size * entryPrice,
		RiskAmount:   riskAmount,
		RiskPerShare: perShare,
	}, nil
}
