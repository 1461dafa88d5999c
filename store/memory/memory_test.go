package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestCommit(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Commit(ctx, &core.Changeset{
		NewMarkets: []*core.Market{{Symbol: "XLM"}},
		Prices:     []*core.Price{{Symbol: "XLM", Price: fixed.New(3_000_000), PublishedAt: 10}},
	}))

	m, err := s.Markets().Find(ctx, "XLM")
	require.NoError(t, err)
	require.NotZero(t, m.ID)

	t.Run("duplicate market", func(t *testing.T) {
		err := s.Commit(ctx, &core.Changeset{NewMarkets: []*core.Market{{Symbol: "XLM"}}})
		assert.ErrorIs(t, err, core.ErrAlreadyInitialized)
	})

	t.Run("version conflict writes nothing", func(t *testing.T) {
		stale := *m
		fresh := *m
		fresh.TotalSupply = fixed.New(1)
		require.NoError(t, s.Commit(ctx, &core.Changeset{Markets: []*core.Market{&fresh}}))
		assert.Equal(t, m.Version+1, fresh.Version)

		stale.TotalSupply = fixed.New(2)
		err := s.Commit(ctx, &core.Changeset{
			Markets: []*core.Market{&stale},
			Entries: []*core.PositionEntry{{UserID: "alice", Symbol: "XLM", Kind: core.PositionKindShares, Amount: fixed.New(2)}},
		})
		assert.ErrorIs(t, err, core.ErrConflict)

		stored, err := s.Markets().Find(ctx, "XLM")
		require.NoError(t, err)
		assert.Equal(t, fixed.New(1), stored.TotalSupply)

		p, err := s.Positions().Find(ctx, "alice", "XLM")
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})

	t.Run("reads are copies", func(t *testing.T) {
		a, err := s.Markets().Find(ctx, "XLM")
		require.NoError(t, err)
		a.TotalBorrow = fixed.New(99)

		b, err := s.Markets().Find(ctx, "XLM")
		require.NoError(t, err)
		assert.True(t, b.TotalBorrow.IsZero())
	})
}

func TestTransfers(t *testing.T) {
	ctx := context.Background()
	s := New()

	transfers := []*core.Transfer{
		{TraceID: "a", Symbol: "XLM", Sender: "alice", Receiver: core.PoolAccount, Amount: fixed.New(1)},
		{TraceID: "b", Symbol: "XLM", Sender: core.PoolAccount, Receiver: "alice", Amount: fixed.New(1)},
		{TraceID: "a", Symbol: "XLM", Sender: "alice", Receiver: core.PoolAccount, Amount: fixed.New(1)},
	}
	require.NoError(t, s.Commit(ctx, &core.Changeset{Transfers: transfers}))

	top, err := s.Transfers().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2, "trace ids are unique")
	assert.Equal(t, "a", top[0].TraceID)

	require.NoError(t, s.Transfers().Delete(ctx, nil, top[0].ID))
	top, err = s.Transfers().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "b", top[0].TraceID)
}

func TestPositions(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Commit(ctx, &core.Changeset{
		Entries: []*core.PositionEntry{
			{UserID: "alice", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(5)},
			{UserID: "bob", Symbol: "USDC", Kind: core.PositionKindDebtPrincipal, Amount: fixed.New(7)},
			{UserID: "alice", Symbol: "XLM", Kind: core.PositionKindCollateral, Amount: fixed.New(9)},
		},
	}))

	positions, err := s.Positions().FindByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "USDC", positions[0].Symbol)
	assert.Equal(t, fixed.New(9), positions[1].Collateral)

	entries, err := s.Positions().FindBySymbol(ctx, "USDC", core.PositionKindDebtPrincipal)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
