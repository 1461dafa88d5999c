package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/store/memory"
)

const admin = "admin"

func newOracle() (core.IOracleService, *clock.Mock) {
	store := memory.New()
	mock := clock.NewMock()
	mock.Add(24 * time.Hour)

	s := New(Config{Admins: []string{admin}, RejectStale: true}, mock, store.Prices(), store)
	return s, mock
}

func TestSetPrice(t *testing.T) {
	ctx := context.Background()
	s, _ := newOracle()

	price, err := s.GetPrice(ctx, "XLM")
	require.NoError(t, err)
	assert.True(t, price.IsZero())

	_, err = s.SafePrice(ctx, "XLM")
	assert.ErrorIs(t, err, core.ErrPriceUnavailable)

	assert.ErrorIs(t, s.SetPrice(ctx, "someone", "XLM", fixed.New(3_000_000)), core.ErrUnauthorized)
	assert.ErrorIs(t, s.SetPrice(ctx, admin, "XLM", fixed.Zero), core.ErrInvalidParameter)

	require.NoError(t, s.SetPrice(ctx, admin, "XLM", fixed.New(3_000_000)))
	price, err = s.SafePrice(ctx, "XLM")
	require.NoError(t, err)
	assert.Equal(t, "3000000", price.String())
}

func TestStale(t *testing.T) {
	ctx := context.Background()
	s, mock := newOracle()

	stale, err := s.IsStale(ctx, "USDC")
	require.NoError(t, err)
	assert.True(t, stale, "unset prices are stale")

	require.NoError(t, s.SetPrices(ctx, admin, map[string]fixed.Int{
		"USDC": fixed.Scale,
		"XLM":  fixed.New(3_000_000),
	}))

	mock.Add(time.Hour)
	stale, err = s.IsStale(ctx, "USDC")
	require.NoError(t, err)
	assert.False(t, stale)

	mock.Add(time.Second)
	stale, err = s.IsStale(ctx, "USDC")
	require.NoError(t, err)
	assert.True(t, stale)

	_, err = s.SafePrice(ctx, "USDC")
	assert.ErrorIs(t, err, core.ErrPriceStale)
}

func TestCrashPrice(t *testing.T) {
	ctx := context.Background()
	s, _ := newOracle()

	_, err := s.CrashPrice(ctx, admin, "XLM")
	assert.ErrorIs(t, err, core.ErrPriceUnavailable)

	require.NoError(t, s.SetPrice(ctx, admin, "XLM", fixed.New(3_000_000)))
	crashed, err := s.CrashPrice(ctx, admin, "XLM")
	require.NoError(t, err)
	assert.Equal(t, "1500000", crashed.String())

	prices, err := s.Prices(ctx)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "1500000", prices[0].Price.String())
}
