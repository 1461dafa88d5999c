package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// MarketInfo market with interest accrued up to now, nothing is persisted
func (s *service) MarketInfo(ctx context.Context, symbol string) (*core.MarketInfo, error) {
	var info *core.MarketInfo
	err := s.view(ctx, func(l *ledger.Ledger, now time.Time) error {
		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		info, err = s.marketService.Info(ctx, market)
		return err
	})

	return info, err
}

func (s *service) Markets(ctx context.Context) ([]*core.MarketInfo, error) {
	var infos []*core.MarketInfo
	err := s.view(ctx, func(l *ledger.Ledger, now time.Time) error {
		markets, err := l.Markets(ctx)
		if err != nil {
			return err
		}

		for _, market := range markets {
			if err := s.marketService.Accrue(ctx, market, now); err != nil {
				return err
			}

			info, err := s.marketService.Info(ctx, market)
			if err != nil {
				return err
			}

			infos = append(infos, info)
		}

		return nil
	})

	return infos, err
}

func (s *service) Position(ctx context.Context, userID, symbol string) (*core.AccountPosition, error) {
	var ap *core.AccountPosition
	err := s.view(ctx, func(l *ledger.Ledger, now time.Time) error {
		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		ap, err = s.accountPosition(ctx, l, market, userID)
		return err
	})

	return ap, err
}

func (s *service) accountPosition(ctx context.Context, l *ledger.Ledger, market *core.Market, userID string) (*core.AccountPosition, error) {
	position, err := l.Position(ctx, userID, market.Symbol)
	if err != nil {
		return nil, err
	}

	underlying, err := pkgcompound.Redeem(market, position.Shares)
	if err != nil {
		return nil, err
	}

	debt, err := s.marketService.Debt(market, position)
	if err != nil {
		return nil, err
	}

	return &core.AccountPosition{
		Position:   position,
		Underlying: underlying,
		Debt:       debt,
	}, nil
}

// Account every non empty position of the user plus the valuation
func (s *service) Account(ctx context.Context, userID string) (*core.Account, error) {
	account := &core.Account{UserID: userID}
	err := s.view(ctx, func(l *ledger.Ledger, now time.Time) error {
		markets, err := l.Markets(ctx)
		if err != nil {
			return err
		}

		for _, market := range markets {
			if err := s.marketService.Accrue(ctx, market, now); err != nil {
				return err
			}

			ap, err := s.accountPosition(ctx, l, market, userID)
			if err != nil {
				return err
			}

			if !ap.IsEmpty() {
				account.Positions = append(account.Positions, ap)
			}
		}

		account.Valuation, err = s.accountService.Valuation(ctx, l, userID, now)
		return err
	})

	if err != nil {
		return nil, err
	}

	return account, nil
}

func (s *service) HealthFactor(ctx context.Context, userID string) (fixed.Int, error) {
	var hf fixed.Int
	err := s.view(ctx, func(l *ledger.Ledger, now time.Time) error {
		valuation, err := s.accountService.Valuation(ctx, l, userID, now)
		if err != nil {
			return err
		}

		hf = valuation.HealthFactor
		return nil
	})

	return hf, err
}
