package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// DepositCollateral locks amount as collateral, no shares are minted
func (s *service) DepositCollateral(ctx context.Context, userID, symbol string, amount fixed.Int) error {
	op := operation{action: core.ActionTypeDepositCollateral, userID: userID, symbol: symbol, amount: amount}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if amount.IsZero() {
			return core.ErrInvalidParameter
		}

		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		if !market.CollateralEnabled {
			return core.ErrAssetNotEnabled
		}

		position, err := l.Position(ctx, userID, symbol)
		if err != nil {
			return err
		}

		if position.Collateral, err = position.Collateral.Add(amount); err != nil {
			return err
		}

		l.Transfer(symbol, userID, core.PoolAccount, amount, "deposit collateral")
		return nil
	})
}

// WithdrawCollateral unlocks collateral as long as the account stays healthy
func (s *service) WithdrawCollateral(ctx context.Context, userID, symbol string, amount fixed.Int) error {
	op := operation{action: core.ActionTypeWithdrawCollateral, userID: userID, symbol: symbol, amount: amount}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if amount.IsZero() {
			return core.ErrInvalidParameter
		}

		if _, err := s.accrued(ctx, l, symbol, now); err != nil {
			return err
		}

		position, err := l.Position(ctx, userID, symbol)
		if err != nil {
			return err
		}

		if position.Collateral.LessThan(amount) {
			return core.ErrInsufficientCollateral
		}

		position.Collateral = position.Collateral.SubFloor(amount)

		// valued with the collateral already removed
		valuation, err := s.accountService.Valuation(ctx, l, userID, now)
		if err != nil {
			return err
		}

		if valuation.DebtUSD.IsPositive() && !valuation.Healthy() {
			return core.ErrUnhealthyWithdrawal
		}

		l.Transfer(symbol, core.PoolAccount, userID, amount, "withdraw collateral")
		extra.Put(core.TransactionKeyHealthFactor, valuation.HealthFactor.String())
		return nil
	})
}
