package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/store/memory"
)

type pool struct {
	core.IPoolService
}

func (pool) MarketInfo(_ context.Context, symbol string) (*core.MarketInfo, error) {
	if symbol != "USDC" {
		return nil, core.ErrMarketNotFound
	}

	return &core.MarketInfo{
		Market: &core.Market{
			Symbol:       "USDC",
			TotalSupply:  fixed.New(1_000_000_000),
			ExchangeRate: fixed.IndexScale,
			BorrowIndex:  fixed.IndexScale,
		},
		Utilization: fixed.New(5_000_000),
		BorrowRate:  fixed.New(250_000),
	}, nil
}

func (p pool) Markets(ctx context.Context) ([]*core.MarketInfo, error) {
	info, err := p.MarketInfo(ctx, "USDC")
	return []*core.MarketInfo{info}, err
}

func (pool) Account(_ context.Context, userID string) (*core.Account, error) {
	return &core.Account{
		UserID: userID,
		Positions: []*core.AccountPosition{{
			Position: &core.Position{UserID: userID, Symbol: "XLM", Collateral: fixed.New(10_000_000_000)},
		}},
		Valuation: &core.Valuation{
			CollateralUSD: fixed.New(3_000_000_000),
			HealthFactor:  fixed.New(8_000_000),
		},
	}, nil
}

type oracle struct {
	core.IOracleService
}

func (oracle) Prices(context.Context) ([]*core.Price, error) {
	return []*core.Price{{Symbol: "XLM", Price: fixed.New(3_000_000), PublishedAt: 60}}, nil
}

func (oracle) IsStale(context.Context, string) (bool, error) {
	return true, nil
}

func get(t *testing.T, h http.Handler, path string, v interface{}) int {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
	return w.Code
}

func TestHandle(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Commit(context.Background(), &core.Changeset{
		Transactions: []*core.Transaction{
			{Action: core.ActionTypeSupply, TraceID: "t1", UserID: "alice", Symbol: "USDC", Amount: fixed.New(5_000_000), Data: []byte(`{"shares":"5000000"}`)},
		},
	}))

	h := Handle(pool{}, oracle{}, store.Transactions())

	t.Run("markets", func(t *testing.T) {
		var markets []map[string]interface{}
		assert.Equal(t, http.StatusOK, get(t, h, "/markets", &markets))
		require.Len(t, markets, 1)
		assert.Equal(t, "100", markets[0]["total_supply"])
		assert.Equal(t, "0.5", markets[0]["utilization"])
		assert.Equal(t, "1", markets[0]["exchange_rate"])
	})

	t.Run("market", func(t *testing.T) {
		var market map[string]interface{}
		assert.Equal(t, http.StatusOK, get(t, h, "/markets/usdc", &market))
		assert.Equal(t, "0.025", market["borrow_apr"])

		var resp map[string]interface{}
		assert.Equal(t, http.StatusNotFound, get(t, h, "/markets/BTC", &resp))
		assert.EqualValues(t, core.ErrMarketNotFound, resp["code"])
	})

	t.Run("account", func(t *testing.T) {
		var account map[string]interface{}
		assert.Equal(t, http.StatusOK, get(t, h, "/accounts/alice", &account))
		assert.Equal(t, "alice", account["user_id"])
		assert.Equal(t, "300", account["collateral_usd"])
		assert.Equal(t, true, account["liquidatable"])
	})

	t.Run("transactions", func(t *testing.T) {
		var txs []map[string]interface{}
		assert.Equal(t, http.StatusOK, get(t, h, "/accounts/alice/transactions?limit=10", &txs))
		require.Len(t, txs, 1)
		assert.Equal(t, "supply", txs[0]["action"])
		assert.Equal(t, "0.5", txs[0]["amount"])

		var resp map[string]interface{}
		assert.Equal(t, http.StatusBadRequest, get(t, h, "/accounts/alice/transactions?limit=abc", &resp))
	})

	t.Run("prices", func(t *testing.T) {
		var prices []map[string]interface{}
		assert.Equal(t, http.StatusOK, get(t, h, "/prices", &prices))
		require.Len(t, prices, 1)
		assert.Equal(t, "0.3", prices[0]["price"])
		assert.Equal(t, true, prices[0]["stale"])
	})
}
