package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// Liquidate closes part of an unhealthy position
func (s *service) Liquidate(ctx context.Context, req *core.LiquidationRequest) (*core.LiquidationResult, error) {
	var result *core.LiquidationResult
	op := operation{
		action: core.ActionTypeLiquidate,
		userID: req.Liquidator,
		symbol: req.RepaySymbol,
		amount: req.RepayAmount,
	}

	err := s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if req.Liquidator == "" || req.Borrower == "" {
			return core.ErrInvalidParameter
		}

		r, err := s.liquidationService.Liquidate(ctx, l, req, now)
		if err != nil {
			return err
		}

		extra.Put("borrower", req.Borrower)
		extra.Put("collateral_symbol", req.CollateralSymbol)
		extra.Put("collateral_seized", r.CollateralSeized.String())
		extra.Put(core.TransactionKeyDebt, r.ActualRepay.String())
		extra.Put(core.TransactionKeyHealthFactor, r.HealthFactor.String())
		result = r
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
