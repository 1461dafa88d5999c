package price

import (
	"context"
	"testing"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// txPriceStore serves the committed row until commit is called
type txPriceStore struct {
	core.IPriceStore
	committed *core.Price
	pending   *core.Price
}

func (s *txPriceStore) Save(_ context.Context, _ *db.DB, price *core.Price) error {
	cp := *price
	s.pending = &cp
	return nil
}

func (s *txPriceStore) Find(_ context.Context, symbol string) (*core.Price, error) {
	cp := *s.committed
	return &cp, nil
}

func (s *txPriceStore) commit() {
	s.committed, s.pending = s.pending, nil
}

func TestCacheForget(t *testing.T) {
	ctx := context.Background()
	store := &txPriceStore{
		committed: &core.Price{ID: 1, Symbol: "XLM", Price: fixed.New(3_000_000)},
	}
	cache := Cache(store, time.Minute)

	p, err := cache.Find(ctx, "XLM")
	require.NoError(t, err)
	assert.Equal(t, "3000000", p.Price.String())

	require.NoError(t, cache.Save(ctx, nil, &core.Price{ID: 1, Symbol: "XLM", Price: fixed.New(1_500_000)}))

	// a read inside the open transaction caches the old row again
	p, err = cache.Find(ctx, "XLM")
	require.NoError(t, err)
	assert.Equal(t, "3000000", p.Price.String())

	store.commit()
	cache.(interface{ Forget(string) }).Forget("XLM")

	p, err = cache.Find(ctx, "XLM")
	require.NoError(t, err)
	assert.Equal(t, "1500000", p.Price.String())
}
