package views

import (
	"github.com/shopspring/decimal"
	"github.com/y4hyya/Stellend/core"
)

// Position position view
type Position struct {
	Symbol     string          `json:"symbol"`
	Shares     decimal.Decimal `json:"shares"`
	Underlying decimal.Decimal `json:"underlying"`
	Collateral decimal.Decimal `json:"collateral"`
	Debt       decimal.Decimal `json:"debt"`
}

// Account account view, usd values are plain dollars
type Account struct {
	UserID                string          `json:"user_id"`
	Positions             []Position      `json:"positions"`
	CollateralUSD         decimal.Decimal `json:"collateral_usd"`
	WeightedCollateralUSD decimal.Decimal `json:"weighted_collateral_usd"`
	DebtUSD               decimal.Decimal `json:"debt_usd"`
	AvailableBorrowUSD    decimal.Decimal `json:"available_borrow_usd"`
	LiquidationThreshold  decimal.Decimal `json:"liquidation_threshold"`
	HealthFactor          decimal.Decimal `json:"health_factor"`
	Liquidatable          bool            `json:"liquidatable"`
}

// AccountView render account
func AccountView(a *core.Account) Account {
	view := Account{
		UserID:    a.UserID,
		Positions: make([]Position, 0, len(a.Positions)),
	}

	for _, p := range a.Positions {
		view.Positions = append(view.Positions, Position{
			Symbol:     p.Symbol,
			Shares:     scaled(p.Shares),
			Underlying: scaled(p.Underlying),
			Collateral: scaled(p.Collateral),
			Debt:       scaled(p.Debt),
		})
	}

	if v := a.Valuation; v != nil {
		view.CollateralUSD = scaled(v.CollateralUSD)
		view.WeightedCollateralUSD = scaled(v.WeightedCollateralUSD)
		view.DebtUSD = scaled(v.DebtUSD)
		view.AvailableBorrowUSD = scaled(v.AvailableBorrowUSD)
		view.LiquidationThreshold = scaled(v.LiquidationThreshold)
		view.HealthFactor = scaled(v.HealthFactor)
		view.Liquidatable = !v.Healthy()
	}

	return view
}

// Liquidation liquidation result view
type Liquidation struct {
	ActualRepay      decimal.Decimal `json:"actual_repay"`
	RepayValueUSD    decimal.Decimal `json:"repay_value_usd"`
	BonusValueUSD    decimal.Decimal `json:"bonus_value_usd"`
	CollateralSeized decimal.Decimal `json:"collateral_seized"`
	HealthFactor     decimal.Decimal `json:"health_factor"`
}

// LiquidationView render liquidation result
func LiquidationView(r *core.LiquidationResult) Liquidation {
	return Liquidation{
		ActualRepay:      scaled(r.ActualRepay),
		RepayValueUSD:    scaled(r.RepayValueUSD),
		BonusValueUSD:    scaled(r.BonusValueUSD),
		CollateralSeized: scaled(r.CollateralSeized),
		HealthFactor:     scaled(r.HealthFactor),
	}
}
