package compound

import (
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Mint shares for supplying amount, ErrInvalidAmount when it rounds to zero
func Mint(market *core.Market, amount fixed.Int) (fixed.Int, error) {
	rate, err := ExchangeRate(market)
	if err != nil {
		return fixed.Zero, err
	}

	shares, err := compound.SharesForAmount(amount, rate)
	if err != nil {
		return fixed.Zero, err
	}

	if shares.IsZero() {
		return fixed.Zero, core.ErrInvalidAmount
	}

	return shares, nil
}

// Redeem underlying paid for burning shares
func Redeem(market *core.Market, shares fixed.Int) (fixed.Int, error) {
	rate, err := ExchangeRate(market)
	if err != nil {
		return fixed.Zero, err
	}

	return compound.AmountForShares(shares, rate)
}

// RedeemAllowed enough liquidity to pay out amount
func RedeemAllowed(market *core.Market, amount fixed.Int) bool {
	return !market.Liquidity().LessThan(amount)
}
