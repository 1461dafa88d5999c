package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/config"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

const testAdmin = "8017d200-7870-4b82-b53f-74bae1d2dad7"

func newPoolCommandEnv(t *testing.T) *services {
	t.Helper()

	initialized = true
	cfg = core.Config{
		Admins:  []string{testAdmin},
		Markets: config.DefaultMarkets(),
	}

	srv := provideServices(provideStores(), clock.New())
	require.NoError(t, seedMarkets(context.Background(), srv.pool))

	prev := poolServices
	poolServices = func() *services { return srv }
	t.Cleanup(func() { poolServices = prev })

	return srv
}

func runCommand(args ...string) (string, string) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	_ = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String()
}

func TestPoolCommands(t *testing.T) {
	ctx := context.Background()
	srv := newPoolCommandEnv(t)

	out, errOut := runCommand("pool", "supply", "alice", "usdc", "1000")
	require.Empty(t, errOut)
	assert.Contains(t, out, "minted shares 1000")

	_, errOut = runCommand("pool", "deposit", "bob", "XLM", "1000")
	require.Empty(t, errOut)

	_, errOut = runCommand("pool", "borrow", "bob", "USDC", "10000")
	assert.Contains(t, errOut, "borrow:")

	_, errOut = runCommand("pool", "borrow", "bob", "USDC", "200")
	require.Empty(t, errOut)

	position, err := srv.pool.Position(ctx, "bob", "USDC")
	require.NoError(t, err)
	assert.Equal(t, "2000000000", position.Debt.String())

	_, err = srv.oracle.CrashPrice(ctx, testAdmin, "XLM")
	require.NoError(t, err)

	out, errOut = runCommand("pool", "liquidate", "carol", "bob", "USDC", "150", "XLM")
	require.Empty(t, errOut)
	assert.Contains(t, out, `"collateral_seized": "700"`)

	position, err = srv.pool.Position(ctx, "bob", "XLM")
	require.NoError(t, err)
	assert.Equal(t, "3000000000", position.Collateral.String())

	out, errOut = runCommand("pool", "repay", "bob", "USDC", "500")
	require.Empty(t, errOut)
	assert.Contains(t, out, "repaid 100")

	_, errOut = runCommand("pool", "withdraw-collateral", "bob", "XLM", "300")
	require.Empty(t, errOut)

	out, errOut = runCommand("pool", "withdraw", "alice", "USDC", "10")
	require.Empty(t, errOut)
	assert.Contains(t, out, "withdrawn 10")

	_, errOut = runCommand("pool", "reserve-factor", "USDC", "0.2", "--operator", testAdmin)
	require.Empty(t, errOut)

	info, err := srv.pool.MarketInfo(ctx, "USDC")
	require.NoError(t, err)
	assert.True(t, info.ReserveFactor.Equal(fixed.New(2_000_000)))

	_, errOut = runCommand("pool", "reserve-factor", "USDC", "0.3", "--operator", "bob")
	assert.Contains(t, errOut, "set reserve factor:")
}
