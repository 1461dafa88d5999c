package pool

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/core"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// Supply deposits amount into the lending side and mints shares at the
// current exchange rate
func (s *service) Supply(ctx context.Context, userID, symbol string, amount fixed.Int) (fixed.Int, error) {
	var shares fixed.Int
	op := operation{action: core.ActionTypeSupply, userID: userID, symbol: symbol, amount: amount}

	err := s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if amount.IsZero() {
			return core.ErrInvalidParameter
		}

		market, err := s.accrued(ctx, l, symbol, now)
		if err != nil {
			return err
		}

		minted, err := pkgcompound.Mint(market, amount)
		if err != nil {
			return err
		}

		position, err := l.Position(ctx, userID, symbol)
		if err != nil {
			return err
		}

		if position.Shares, err = position.Shares.Add(minted); err != nil {
			return err
		}

		if market.TotalSupply, err = market.TotalSupply.Add(amount); err != nil {
			return err
		}

		if market.TotalShares, err = market.TotalShares.Add(minted); err != nil {
			return err
		}

		l.Transfer(symbol, userID, core.PoolAccount, amount, "supply")
		extra.Put(core.TransactionKeyShares, minted.String())
		shares = minted
		return nil
	})

	if err != nil {
		return fixed.Zero, err
	}

	return shares, nil
}

// Withdraw burns shares and pays out the underlying they are worth
func (s *service) Withdraw(ctx context.Context, userID, symbol string, shares fixed.Int) (fixed.Int, error) {
	var underlying fixed.Int
	op := operation{action: core.ActionTypeWithdraw, userID: userID, symbol: symbol, amount: shares}

	err := s.execute(ctx, op, func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error {
		if shares.IsZero() {
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

		if position.Shares.LessThan(shares) {
			return core.ErrInsufficientShareBalance
		}

		amount, err := pkgcompound.Redeem(market, shares)
		if err != nil {
			return err
		}

		if amount.IsZero() {
			return core.ErrInvalidAmount
		}

		if !pkgcompound.RedeemAllowed(market, amount) {
			return core.ErrInsufficientLiquidity
		}

		position.Shares = position.Shares.SubFloor(shares)
		market.TotalShares = market.TotalShares.SubFloor(shares)
		market.TotalSupply = market.TotalSupply.SubFloor(amount)

		l.Transfer(symbol, core.PoolAccount, userID, amount, "withdraw")
		extra.Put(core.TransactionKeyUnderlying, amount.String())
		underlying = amount
		return nil
	})

	if err != nil {
		return fixed.Zero, err
	}

	return underlying, nil
}
