package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// Initialize creates the given markets, once
func (s *service) Initialize(ctx context.Context, operator string, markets []*core.MarketParams) error {
	op := operation{action: core.ActionTypeInitMarket, userID: operator}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if !s.isAdmin(operator) {
			return core.ErrUnauthorized
		}

		if len(markets) == 0 {
			return core.ErrInvalidParameter
		}

		existing, err := l.Markets(ctx)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			return core.ErrAlreadyInitialized
		}

		symbols := make([]string, 0, len(markets))
		for _, params := range markets {
			if err := s.createMarket(ctx, l, params, now); err != nil {
				return err
			}

			symbols = append(symbols, params.Symbol)
		}

		extra.Put("markets", symbols)
		return nil
	})
}

// InitMarket creates one market
func (s *service) InitMarket(ctx context.Context, operator string, params *core.MarketParams) error {
	op := operation{action: core.ActionTypeInitMarket, userID: operator, symbol: params.Symbol}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if !s.isAdmin(operator) {
			return core.ErrUnauthorized
		}

		return s.createMarket(ctx, l, params, now)
	})
}

func (s *service) createMarket(ctx context.Context, l *ledger.Ledger, params *core.MarketParams, now time.Time) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := l.CreateMarket(ctx, pkgcompound.NewMarket(params, now)); err != nil {
		return err
	}

	if params.InitialPrice.IsPositive() {
		l.SetPrice(&core.Price{
			Symbol:      params.Symbol,
			Price:       params.InitialPrice,
			PublishedAt: now.Unix(),
		})
	}

	return nil
}

// SetReserveFactor interest accrued so far is split at the old factor
func (s *service) SetReserveFactor(ctx context.Context, operator, symbol string, reserveFactor fixed.Int) error {
	op := operation{action: core.ActionTypeSetReserveFactor, userID: operator, symbol: symbol, amount: reserveFactor}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if !s.isAdmin(operator) {
			return core.ErrUnauthorized
		}

		if !reserveFactor.LessThan(fixed.Scale) {
			return core.ErrInvalidParameter
		}

		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		extra.Put(core.TransactionKeyReserveFactor, reserveFactor.String())
		market.ReserveFactor = reserveFactor
		return nil
	})
}

// AccrueAll brings every market's index up to date
func (s *service) AccrueAll(ctx context.Context) error {
	op := operation{action: core.ActionTypeAccrue, silent: true}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, _ core.TransactionExtraData) error {
		markets, err := l.Markets(ctx)
		if err != nil {
			return err
		}

		for _, m := range markets {
			if err := s.marketService.Accrue(ctx, m, now); err != nil {
				return err
			}
		}

		return nil
	})
}
