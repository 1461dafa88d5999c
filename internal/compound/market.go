package compound

import (
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Balances the market totals the interest math operates on
type Balances struct {
	TotalSupply   fixed.Int
	TotalShares   fixed.Int
	TotalBorrow   fixed.Int
	TotalReserves fixed.Int
	BorrowIndex   fixed.Int
	ReserveFactor fixed.Int
}

// Accrual interest produced by one accrual period
type Accrual struct {
	Rate     fixed.Int
	Factor   fixed.Int
	Interest fixed.Int
	Reserve  fixed.Int
}

// UtilizationRate total_borrow / total_supply, zero when nothing is supplied
func UtilizationRate(totalBorrow, totalSupply fixed.Int) (fixed.Int, error) {
	if totalSupply.IsZero() {
		return fixed.Zero, nil
	}

	return fixed.MulDiv(totalBorrow, fixed.Scale, totalSupply)
}

// ExchangeRate (total_supply + total_borrow - total_reserves) / total_shares,
// scaled by fixed.IndexScale. 1:1 while no shares exist.
func ExchangeRate(b Balances) (fixed.Int, error) {
	if b.TotalShares.IsZero() {
		return fixed.IndexScale, nil
	}

	total, err := b.TotalSupply.Add(b.TotalBorrow)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.MulDiv(total.SubFloor(b.TotalReserves), fixed.IndexScale, b.TotalShares)
}

// SharesForAmount amount / exchange_rate
func SharesForAmount(amount, exchangeRate fixed.Int) (fixed.Int, error) {
	return fixed.MulDiv(amount, fixed.IndexScale, exchangeRate)
}

// AmountForShares shares * exchange_rate
func AmountForShares(shares, exchangeRate fixed.Int) (fixed.Int, error) {
	return fixed.MulDiv(shares, exchangeRate, fixed.IndexScale)
}

// BorrowBalance principal * borrow_index / origin_index, zero without principal
func BorrowBalance(principal, borrowIndex, originIndex fixed.Int) (fixed.Int, error) {
	if principal.IsZero() {
		return fixed.Zero, nil
	}

	if originIndex.IsZero() {
		return principal, nil
	}

	return fixed.MulDiv(principal, borrowIndex, originIndex)
}

// Accrue applies elapsed seconds of interest to b.
//
// Callers skip the call when the market is idle (no supply or no borrow).
func (b *Balances) Accrue(curve RateCurve, elapsed uint64) (*Accrual, error) {
	utilization, err := UtilizationRate(b.TotalBorrow, b.TotalSupply)
	if err != nil {
		return nil, err
	}

	rate, err := curve.Rate(utilization)
	if err != nil {
		return nil, err
	}

	factor, err := fixed.MulDiv(rate, fixed.New(elapsed), fixed.SecondsPerYear)
	if err != nil {
		return nil, err
	}

	indexDelta, err := fixed.MulDiv(b.BorrowIndex, factor, fixed.Scale)
	if err != nil {
		return nil, err
	}

	interest, err := fixed.MulDiv(b.TotalBorrow, factor, fixed.Scale)
	if err != nil {
		return nil, err
	}

	reserve, err := fixed.MulDiv(interest, b.ReserveFactor, fixed.Scale)
	if err != nil {
		return nil, err
	}

	index, err := b.BorrowIndex.Add(indexDelta)
	if err != nil {
		return nil, err
	}

	supply, err := b.TotalSupply.Add(interest.SubFloor(reserve))
	if err != nil {
		return nil, err
	}

	reserves, err := b.TotalReserves.Add(reserve)
	if err != nil {
		return nil, err
	}

	b.BorrowIndex = index
	b.TotalSupply = supply
	b.TotalReserves = reserves

	return &Accrual{
		Rate:     rate,
		Factor:   factor,
		Interest: interest,
		Reserve:  reserve,
	}, nil
}
