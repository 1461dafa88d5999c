package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func newMarket(now time.Time) *core.Market {
	return NewMarket(&core.MarketParams{
		Symbol:               "USDC",
		LTV:                  fixed.Percent(80),
		LiquidationThreshold: fixed.Percent(85),
		ReserveFactor:        fixed.Percent(10),
		CollateralEnabled:    true,
		BorrowEnabled:        true,
	}, now)
}

func TestAccrueInterest(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	curve := compound.DefaultMultiKink()

	t.Run("same timestamp", func(t *testing.T) {
		m := newMarket(now)
		accrual, err := AccrueInterest(curve, m, now)
		require.NoError(t, err)
		assert.Nil(t, accrual)
		assert.Equal(t, now.Unix(), m.LastAccrualTime)
	})

	t.Run("idle market only moves time", func(t *testing.T) {
		m := newMarket(now)
		m.TotalSupply = fixed.New(10_000_000_000)
		later := now.Add(time.Hour)

		accrual, err := AccrueInterest(curve, m, later)
		require.NoError(t, err)
		assert.Nil(t, accrual)
		assert.Equal(t, later.Unix(), m.LastAccrualTime)
		assert.True(t, m.BorrowIndex.Equal(fixed.IndexScale))
	})

	t.Run("borrowed market grows", func(t *testing.T) {
		m := newMarket(now)
		m.TotalSupply = fixed.New(10_000_000_000)
		m.TotalShares = m.TotalSupply
		m.TotalBorrow = fixed.New(5_000_000_000)

		accrual, err := AccrueInterest(curve, m, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.NotNil(t, accrual)
		assert.True(t, m.BorrowIndex.GreaterThan(fixed.IndexScale))
		assert.True(t, m.TotalReserves.IsPositive())
		assert.True(t, m.ExchangeRate.GreaterThan(fixed.IndexScale))
	})
}

func TestCapitalize(t *testing.T) {
	m := newMarket(time.Now())
	p := core.NewPosition("alice", "USDC")
	p.DebtPrincipal = fixed.New(100)
	p.DebtIndex = fixed.IndexScale

	m.BorrowIndex = fixed.New(2_000_000_000)

	debt, err := Capitalize(m, p)
	require.NoError(t, err)
	assert.Equal(t, "200", debt.String())
	assert.Equal(t, "200", p.DebtPrincipal.String())
	assert.True(t, p.DebtIndex.Equal(m.BorrowIndex))
}

func TestMintRedeem(t *testing.T) {
	m := newMarket(time.Now())

	shares, err := Mint(m, fixed.New(100))
	require.NoError(t, err)
	assert.Equal(t, "100", shares.String())

	amount, err := Redeem(m, shares)
	require.NoError(t, err)
	assert.Equal(t, "100", amount.String())

	assert.False(t, RedeemAllowed(m, fixed.New(1)))
}
