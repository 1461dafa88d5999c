package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// Borrow draws amount against the LTV weighted collateral
func (s *service) Borrow(ctx context.Context, userID, symbol string, amount fixed.Int) error {
	op := operation{action: core.ActionTypeBorrow, userID: userID, symbol: symbol, amount: amount}

	return s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if amount.IsZero() {
			return core.ErrInvalidParameter
		}

		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		if !market.BorrowEnabled {
			return core.ErrAssetNotEnabled
		}

		if market.Liquidity().LessThan(amount) {
			return core.ErrInsufficientLiquidity
		}

		valuation, err := s.accountService.Valuation(ctx, l, userID, now)
		if err != nil {
			return err
		}

		price, err := s.accountService.Price(ctx, symbol)
		if err != nil {
			return err
		}

		borrowValue, err := core.ValueInUSD(amount, price)
		if err != nil {
			return err
		}

		total, err := valuation.DebtUSD.Add(borrowValue)
		if err != nil {
			return err
		}

		if total.GreaterThan(valuation.WeightedCollateralUSD) {
			return core.ErrLTVExceeded
		}

		position, err := l.Position(ctx, userID, symbol)
		if err != nil {
			return err
		}

		debt, err := pkgcompound.Capitalize(market, position)
		if err != nil {
			return err
		}

		if debt, err = debt.Add(amount); err != nil {
			return err
		}

		pkgcompound.SetDebt(market, position, debt)
		if market.TotalBorrow, err = market.TotalBorrow.Add(amount); err != nil {
			return err
		}

		l.Transfer(symbol, core.PoolAccount, userID, amount, "borrow")
		extra.Put(core.TransactionKeyDebt, debt.String())
		return nil
	})
}

// Repay pays back up to the interest inclusive debt and returns the amount
// actually applied
func (s *service) Repay(ctx context.Context, userID, symbol string, amount fixed.Int) (fixed.Int, error) {
	var repaid fixed.Int
	op := operation{action: core.ActionTypeRepay, userID: userID, symbol: symbol, amount: amount}

	err := s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if amount.IsZero() {
			return core.ErrInvalidParameter
		}

		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		position, err := l.Position(ctx, userID, symbol)
		if err != nil {
			return err
		}

		debt, err := s.marketService.Debt(market, position)
		if err != nil {
			return err
		}

		if debt.IsZero() {
			return core.ErrNoDebt
		}

		actual := fixed.Min(amount, debt)
		remaining := debt.SubFloor(actual)

		pkgcompound.SetDebt(market, position, remaining)
		market.TotalBorrow = market.TotalBorrow.SubFloor(actual)

		l.Transfer(symbol, userID, core.PoolAccount, actual, "repay")
		extra.Put(core.TransactionKeyDebt, remaining.String())
		repaid = actual
		return nil
	})

	if err != nil {
		return fixed.Zero, err
	}

	return repaid, nil
}
