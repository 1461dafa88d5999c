package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func newMarket() *core.Market {
	return &core.Market{
		Symbol:          "USDC",
		TotalSupply:     fixed.New(100_000_000_000),
		TotalShares:     fixed.New(100_000_000_000),
		TotalBorrow:     fixed.New(50_000_000_000),
		ExchangeRate:    fixed.IndexScale,
		BorrowIndex:     fixed.IndexScale,
		ReserveFactor:   fixed.New(1_000_000),
		LastAccrualTime: 1000,
		BorrowEnabled:   true,
	}
}

func TestAccrue(t *testing.T) {
	ctx := context.Background()
	s := New(compound.DefaultMultiKink())

	t.Run("same time is a no-op", func(t *testing.T) {
		m := newMarket()
		before := *m
		require.NoError(t, s.Accrue(ctx, m, time.Unix(1000, 0)))
		assert.Equal(t, before, *m)

		require.NoError(t, s.Accrue(ctx, m, time.Unix(900, 0)))
		assert.Equal(t, before, *m)
	})

	t.Run("zero borrow only advances time", func(t *testing.T) {
		m := newMarket()
		m.TotalBorrow = fixed.Zero
		require.NoError(t, s.Accrue(ctx, m, time.Unix(5000, 0)))
		assert.Equal(t, int64(5000), m.LastAccrualTime)
		assert.True(t, m.BorrowIndex.Equal(fixed.IndexScale))
		assert.Equal(t, "100000000000", m.TotalSupply.String())
	})

	t.Run("index grows", func(t *testing.T) {
		m := newMarket()
		require.NoError(t, s.Accrue(ctx, m, time.Unix(1000+31_557_600, 0)))
		assert.Equal(t, "1025000000", m.BorrowIndex.String())
		assert.Equal(t, "101125000000", m.TotalSupply.String())
		assert.Equal(t, "125000000", m.TotalReserves.String())

		prev := m.BorrowIndex
		require.NoError(t, s.Accrue(ctx, m, time.Unix(2000+31_557_600, 0)))
		assert.False(t, m.BorrowIndex.LessThan(prev))
	})
}

func TestDebt(t *testing.T) {
	s := New(compound.DefaultMultiKink())
	m := newMarket()
	m.BorrowIndex = fixed.New(1_100_000_000)

	p := core.NewPosition("u", "USDC")
	debt, err := s.Debt(m, p)
	require.NoError(t, err)
	assert.True(t, debt.IsZero())

	p.DebtPrincipal = fixed.New(1000)
	p.DebtIndex = fixed.IndexScale
	debt, err = s.Debt(m, p)
	require.NoError(t, err)
	assert.Equal(t, "1100", debt.String())
}

func TestInfo(t *testing.T) {
	s := New(compound.DefaultMultiKink())
	info, err := s.Info(context.Background(), newMarket())
	require.NoError(t, err)

	assert.Equal(t, "5000000", info.Utilization.String())
	assert.Equal(t, "250000", info.BorrowRate.String())
	// 2.5% * 50% * 90%
	assert.Equal(t, "112500", info.SupplyRate.String())
	assert.Equal(t, "50000000000", info.Liquidity.String())
}
