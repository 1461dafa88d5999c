package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/service/custody"
	"github.com/y4hyya/Stellend/store/memory"
)

func TestWorker(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	book := custody.NewBook()

	w, err := New(&core.Config{}, nil, store.Transfers(), book)
	require.NoError(t, err)

	require.NoError(t, store.Commit(ctx, &core.Changeset{Transfers: []*core.Transfer{
		{TraceID: "1", Symbol: "USDC", Sender: "alice", Receiver: core.PoolAccount, Amount: fixed.New(100)},
		{TraceID: "2", Symbol: "USDC", Sender: core.PoolAccount, Receiver: "bob", Amount: fixed.New(150)},
		{TraceID: "3", Symbol: "USDC", Sender: "carol", Receiver: core.PoolAccount, Amount: fixed.New(50)},
	}}))

	// the payout to bob cannot be covered yet and blocks the queue
	assert.ErrorIs(t, w.onWork(ctx), core.ErrInsufficientLiquidity)

	pending, err := store.Transfers().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "2", pending[0].TraceID)
	assert.Equal(t, fixed.New(100), book.Holding("USDC"))

	require.NoError(t, book.Transfer(ctx, &core.Transfer{TraceID: "seed", Symbol: "USDC", Receiver: core.PoolAccount, Amount: fixed.New(50)}))
	require.NoError(t, w.onWork(ctx))

	pending, err = store.Transfers().Top(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, fixed.New(50), book.Holding("USDC"))
}
