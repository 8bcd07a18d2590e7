package model

import (
	"github.com/acala-trade/acala/internal/config"
	"github.com/shopspring/decimal"
)

// RiskLimits is the domain view of the configured risk scalars. Amounts are
// decimals so downstream sizing math stays exact.
type RiskLimits struct {
	MinTradeSize      decimal.Decimal `json:"min_trade_size"`
	MaxPositionSize   decimal.Decimal `json:"max_position_size"`
	RiskPerTrade      decimal.Decimal `json:"risk_per_trade"`
	SlippageTolerance decimal.Decimal `json:"slippage_tolerance"`
}

func RiskLimitsFromConfig(cfg config.RiskConfig) RiskLimits {
	return RiskLimits{
		MinTradeSize:      decimal.NewFromFloat(cfg.MinTradeSize),
		MaxPositionSize:   decimal.NewFromFloat(cfg.MaxPositionSize),
		RiskPerTrade:      decimal.NewFromFloat(cfg.RiskPerTrade),
		SlippageTolerance: decimal.NewFromFloat(cfg.SlippageTolerance),
	}
}

// TradeBudget returns the per-trade budget for the given equity: the risk
// fraction of equity, clamped to [MinTradeSize, MaxPositionSize].
func (r RiskLimits) TradeBudget(equity decimal.Decimal) decimal.Decimal {
	budget := equity.Mul(r.RiskPerTrade)
	if budget.LessThan(r.MinTradeSize) {
		return r.MinTradeSize
	}
	if budget.GreaterThan(r.MaxPositionSize) {
		return r.MaxPositionSize
	}
	return budget
}
