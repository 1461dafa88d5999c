package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestExchangeRate(t *testing.T) {
	rate, err := ExchangeRate(Balances{})
	require.NoError(t, err)
	assert.True(t, rate.Equal(fixed.IndexScale))

	rate, err = ExchangeRate(Balances{
		TotalSupply:   fixed.New(110),
		TotalShares:   fixed.New(100),
		TotalReserves: fixed.New(10),
	})
	require.NoError(t, err)
	assert.True(t, rate.Equal(fixed.IndexScale))
}

func TestShareRoundTrip(t *testing.T) {
	amount := fixed.New(100_000_000)

	shares, err := SharesForAmount(amount, fixed.IndexScale)
	require.NoError(t, err)
	assert.True(t, shares.Equal(amount))

	back, err := AmountForShares(shares, fixed.IndexScale)
	require.NoError(t, err)
	assert.True(t, back.Equal(amount))
}

func TestBorrowBalance(t *testing.T) {
	debt, err := BorrowBalance(fixed.Zero, fixed.New(2_000_000_000), fixed.IndexScale)
	require.NoError(t, err)
	assert.True(t, debt.IsZero())

	debt, err = BorrowBalance(fixed.New(100), fixed.New(1_100_000_000), fixed.IndexScale)
	require.NoError(t, err)
	assert.Equal(t, "110", debt.String())
}

func TestAccrue(t *testing.T) {
	b := Balances{
		TotalSupply:   fixed.New(100_000_000_000),
		TotalShares:   fixed.New(100_000_000_000),
		TotalBorrow:   fixed.New(50_000_000_000),
		BorrowIndex:   fixed.IndexScale,
		ReserveFactor: fixed.New(1_000_000),
	}

	// 50% utilization on the default curve is 2.5% a year
	accrual, err := b.Accrue(DefaultMultiKink(), 31_557_600)
	require.NoError(t, err)

	assert.Equal(t, "250000", accrual.Rate.String())
	assert.Equal(t, "250000", accrual.Factor.String())
	assert.Equal(t, "1250000000", accrual.Interest.String())
	assert.Equal(t, "125000000", accrual.Reserve.String())

	assert.Equal(t, "1025000000", b.BorrowIndex.String())
	assert.Equal(t, "101125000000", b.TotalSupply.String())
	assert.Equal(t, "125000000", b.TotalReserves.String())
}
