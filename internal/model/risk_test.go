package model

import (
	"testing"

	"github.com/acala-trade/acala/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTradeBudgetClamping(t *testing.T) {
	limits := RiskLimitsFromConfig(config.RiskConfig{
		MinTradeSize:      10,
		MaxPositionSize:   1000,
		RiskPerTrade:      0.02,
		SlippageTolerance: 0.005,
	})

	// 2% of 5000 is inside the band
	got := limits.TradeBudget(decimal.NewFromInt(5000))
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)

	// small equity clamps up to the minimum trade size
	got = limits.TradeBudget(decimal.NewFromInt(100))
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "got %s", got)

	// large equity clamps down to the position cap
	got = limits.TradeBudget(decimal.NewFromInt(10_000_000))
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}
