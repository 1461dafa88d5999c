package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestDefaults(t *testing.T) {
	var cfg core.Config
	defaults(&cfg)
	require.NoError(t, Validate(&cfg))

	assert.Equal(t, "multi_kink", cfg.RateModel.Kind)
	assert.True(t, cfg.Oracle.ShouldRejectStale())

	params, err := MarketParams(cfg.Markets)
	require.NoError(t, err)
	require.Len(t, params, 2)

	xlm := params[0]
	assert.Equal(t, "XLM", xlm.Symbol)
	assert.Equal(t, fixed.New(7_500_000), xlm.LTV)
	assert.Equal(t, fixed.New(8_000_000), xlm.LiquidationThreshold)
	assert.Equal(t, fixed.New(1_000_000), xlm.ReserveFactor)
	assert.Equal(t, fixed.New(3_000_000), xlm.InitialPrice)
	assert.False(t, xlm.BorrowEnabled)

	usdc := params[1]
	assert.Equal(t, fixed.Scale, usdc.InitialPrice)
	assert.True(t, usdc.BorrowEnabled)
}

func TestValidate(t *testing.T) {
	cfg := core.Config{}
	defaults(&cfg)

	cfg.RateModel.Kind = "linear"
	assert.Error(t, Validate(&cfg))

	cfg.RateModel.Kind = "two_slope"
	cfg.Markets = []core.MarketConfig{{Symbol: "xlm", LTV: "0.9", LiquidationThreshold: "0.8"}}
	assert.Error(t, Validate(&cfg))

	cfg.Markets = []core.MarketConfig{{Symbol: "xlm", LTV: "abc"}}
	assert.Error(t, Validate(&cfg))

	cfg.Markets = []core.MarketConfig{{Symbol: "xlm", LTV: "0.5", LiquidationThreshold: "0.6"}}
	require.NoError(t, Validate(&cfg))

	cfg.Custody.Endpoint = "not a url"
	assert.Error(t, Validate(&cfg))
}
