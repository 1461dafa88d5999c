package price

import (
	"context"
	"fmt"
	"time"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/core"
	"golang.org/x/sync/singleflight"
)

// Cache read through cache in front of a price store. Entries expire
// after exp so writes made by other processes are picked up.
func Cache(store core.IPriceStore, exp time.Duration) core.IPriceStore {
	return &cachePriceStore{
		IPriceStore: store,
		exp:         exp,
		cache:       gcache.New(256).LRU().Build(),
		sf:          &singleflight.Group{},
	}
}

type cachePriceStore struct {
	core.IPriceStore
	exp   time.Duration
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cachePriceStore) Save(ctx context.Context, tx *db.DB, price *core.Price) error {
	if err := s.IPriceStore.Save(ctx, tx, price); err != nil {
		return err
	}

	s.cache.Remove(s.key(price.Symbol))
	return nil
}

func (s *cachePriceStore) Find(ctx context.Context, symbol string) (*core.Price, error) {
	key := s.key(symbol)
	if v, err := s.cache.Get(key); err == nil {
		if price, ok := v.(*core.Price); ok {
			cp := *price
			return &cp, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		price, err := s.IPriceStore.Find(ctx, symbol)
		if err != nil {
			return nil, err
		}

		if price.ID > 0 {
			_ = s.cache.SetWithExpire(key, price, s.exp)
		}

		return price, nil
	})
	if err != nil {
		return nil, err
	}

	cp := *(v.(*core.Price))
	return &cp, nil
}

// Forget drops the cached price of symbol. Save runs inside the writer's
// transaction, so committers call Forget again once the rows are visible.
func (s *cachePriceStore) Forget(symbol string) {
	s.cache.Remove(s.key(symbol))
}

func (s *cachePriceStore) key(symbol string) string {
	return fmt.Sprintf("price:symbol:%s", symbol)
}
