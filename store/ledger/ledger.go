package ledger

import (
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/core"
)

type ledgerStore struct {
	db           *db.DB
	markets      core.IMarketStore
	positions    core.IPositionStore
	prices       core.IPriceStore
	transfers    core.ITransferStore
	transactions core.ITransactionStore
}

// New commits changesets in a single database transaction
func New(
	db *db.DB,
	markets core.IMarketStore,
	positions core.IPositionStore,
	prices core.IPriceStore,
	transfers core.ITransferStore,
	transactions core.ITransactionStore,
) core.ILedgerStore {
	return &ledgerStore{
		db:           db,
		markets:      markets,
		positions:    positions,
		prices:       prices,
		transfers:    transfers,
		transactions: transactions,
	}
}

func (s *ledgerStore) Commit(ctx context.Context, cs *core.Changeset) error {
	log := logger.FromContext(ctx).WithField("store", "ledger")

	err := s.db.Tx(func(tx *db.DB) error {
		for _, m := range cs.NewMarkets {
			if err := s.markets.Create(ctx, tx, m); err != nil {
				return err
			}
		}

		for _, m := range cs.Markets {
			if err := s.markets.Update(ctx, tx, m); err != nil {
				return err
			}
		}

		for _, e := range cs.Entries {
			if err := s.positions.Save(ctx, tx, e); err != nil {
				return err
			}
		}

		for _, p := range cs.Prices {
			if err := s.prices.Save(ctx, tx, p); err != nil {
				return err
			}
		}

		for _, t := range cs.Transfers {
			if err := s.transfers.Create(ctx, tx, t); err != nil {
				return err
			}
		}

		for _, t := range cs.Transactions {
			if err := s.transactions.Create(ctx, tx, t); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.WithError(err).Errorln("commit")
		return err
	}

	forgetPrices(s.prices, cs.Prices)
	log.Debugf("committed %d markets, %d entries, %d transfers", len(cs.NewMarkets)+len(cs.Markets), len(cs.Entries), len(cs.Transfers))
	return nil
}

type priceForgetter interface {
	Forget(symbol string)
}

// forgetPrices evicts committed prices from a caching price store
func forgetPrices(store core.IPriceStore, prices []*core.Price) {
	f, ok := store.(priceForgetter)
	if !ok {
		return
	}

	for _, p := range prices {
		f.Forget(p.Symbol)
	}
}
