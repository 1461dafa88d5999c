package compound

import (
	"time"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// NewMarket market with 1:1 exchange rate and a fresh borrow index
func NewMarket(params *core.MarketParams, now time.Time) *core.Market {
	return &core.Market{
		Symbol:               params.Symbol,
		ExchangeRate:         fixed.IndexScale,
		BorrowIndex:          fixed.IndexScale,
		LastAccrualTime:      now.Unix(),
		ReserveFactor:        params.ReserveFactor,
		LTV:                  params.LTV,
		LiquidationThreshold: params.LiquidationThreshold,
		CollateralEnabled:    params.CollateralEnabled,
		BorrowEnabled:        params.BorrowEnabled,
	}
}

// Balances market totals as seen by the interest math
func Balances(market *core.Market) compound.Balances {
	return compound.Balances{
		TotalSupply:   market.TotalSupply,
		TotalShares:   market.TotalShares,
		TotalBorrow:   market.TotalBorrow,
		TotalReserves: market.TotalReserves,
		BorrowIndex:   market.BorrowIndex,
		ReserveFactor: market.ReserveFactor,
	}
}

// UtilizationRate total_borrow / total_supply
func UtilizationRate(market *core.Market) (fixed.Int, error) {
	return compound.UtilizationRate(market.TotalBorrow, market.TotalSupply)
}

// ExchangeRate underlying per share
func ExchangeRate(market *core.Market) (fixed.Int, error) {
	return compound.ExchangeRate(Balances(market))
}

// AccrueInterest accrue interest up to now
//
// A no-op when now is not after the last accrual. Idle markets (no supply or
// no borrow) only move the accrual time forward.
func AccrueInterest(curve compound.RateCurve, market *core.Market, now time.Time) (*compound.Accrual, error) {
	ts := now.Unix()
	if ts <= market.LastAccrualTime {
		return nil, nil
	}

	if market.BorrowIndex.IsZero() {
		market.BorrowIndex = fixed.IndexScale
	}

	if market.TotalBorrow.IsZero() || market.TotalSupply.IsZero() {
		market.LastAccrualTime = ts
		return nil, nil
	}

	b := Balances(market)
	accrual, err := b.Accrue(curve, uint64(ts-market.LastAccrualTime))
	if err != nil {
		return nil, err
	}

	market.BorrowIndex = b.BorrowIndex
	market.TotalSupply = b.TotalSupply
	market.TotalReserves = b.TotalReserves
	market.LastAccrualTime = ts

	return accrual, RefreshExchangeRate(market)
}

// RefreshExchangeRate store the current exchange rate snapshot on the market
func RefreshExchangeRate(market *core.Market) error {
	rate, err := ExchangeRate(market)
	if err != nil {
		return err
	}

	market.ExchangeRate = rate
	return nil
}
