package custody

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

func TestBook(t *testing.T) {
	ctx := context.Background()
	b := NewBook()

	in := &core.Transfer{TraceID: "in", Symbol: "USDC", Sender: "alice", Receiver: core.PoolAccount, Amount: fixed.New(100)}
	require.NoError(t, b.Transfer(ctx, in))
	require.NoError(t, b.Transfer(ctx, in), "replays are ignored")
	assert.Equal(t, fixed.New(100), b.Holding("USDC"))

	out := &core.Transfer{TraceID: "out", Symbol: "USDC", Sender: core.PoolAccount, Receiver: "bob", Amount: fixed.New(101)}
	assert.ErrorIs(t, b.Transfer(ctx, out), core.ErrInsufficientLiquidity)

	out.Amount = fixed.New(40)
	require.NoError(t, b.Transfer(ctx, out))
	assert.Equal(t, fixed.New(60), b.Holding("USDC"))
}

func TestNew(t *testing.T) {
	c, err := New(core.Custody{})
	require.NoError(t, err)
	assert.IsType(t, &Book{}, c)

	_, err = New(core.Custody{Kind: KindHTTP, Endpoint: "not a url"})
	assert.Error(t, err)

	c, err = New(core.Custody{Kind: KindHTTP, Endpoint: "https://custody.example.com/transfers"})
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, c)

	_, err = New(core.Custody{Kind: "vault"})
	assert.Error(t, err)
}
