package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/y4hyya/Stellend/core"
)

type forgettingPriceStore struct {
	core.IPriceStore
	forgotten []string
}

func (s *forgettingPriceStore) Forget(symbol string) {
	s.forgotten = append(s.forgotten, symbol)
}

func TestForgetPrices(t *testing.T) {
	store := &forgettingPriceStore{}
	forgetPrices(store, []*core.Price{{Symbol: "XLM"}, {Symbol: "USDC"}})
	assert.Equal(t, []string{"XLM", "USDC"}, store.forgotten)

	// stores without a cache are left alone
	assert.NotPanics(t, func() {
		forgetPrices(&struct{ core.IPriceStore }{}, []*core.Price{{Symbol: "XLM"}})
	})
}
