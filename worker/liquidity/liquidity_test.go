package liquidity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/store/memory"
)

type pool struct {
	core.IPoolService
	factors map[string]fixed.Int
}

func (p *pool) HealthFactor(_ context.Context, userID string) (fixed.Int, error) {
	hf, ok := p.factors[userID]
	if !ok {
		return fixed.Zero, core.ErrPriceStale
	}

	return hf, nil
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Commit(ctx, &core.Changeset{
		NewMarkets: []*core.Market{
			{Symbol: "USDC", BorrowEnabled: true},
			{Symbol: "XLM", CollateralEnabled: true},
		},
		Entries: []*core.PositionEntry{
			{UserID: "alice", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(10)},
			{UserID: "bob", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(10)},
			{UserID: "carol", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.Zero},
			{UserID: "dave", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(10)},
			{UserID: "erin", Symbol: "XLM", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(10)},
		},
	}))

	p := &pool{factors: map[string]fixed.Int{
		"alice": fixed.New(9_000_000),
		"bob":   fixed.New(12_000_000),
		"erin":  fixed.Zero,
	}}

	w, err := New(&core.Config{}, store.Markets(), store.Positions(), p)
	require.NoError(t, err)

	users, err := w.borrowers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "dave"}, users)

	unhealthy, err := w.scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, unhealthy)
}
