package core

import (
	"context"
	"time"

	"github.com/y4hyya/Stellend/pkg/fixed"
)

const (
	// ThresholdPolicyRepresentative one liquidation threshold for all collateral
	ThresholdPolicyRepresentative = "representative"
	// ThresholdPolicyWeighted liquidation threshold weighted by collateral value
	ThresholdPolicyWeighted = "weighted"
)

// NoDebtHealthFactor health factor of an account without debt
var NoDebtHealthFactor = fixed.New(999 * 10_000_000)

// Valuation aggregate USD exposure of one account, scaled by fixed.Scale
type Valuation struct {
	CollateralUSD         fixed.Int `json:"collateral_usd"`
	WeightedCollateralUSD fixed.Int `json:"weighted_collateral_usd"`
	DebtUSD               fixed.Int `json:"debt_usd"`
	AvailableBorrowUSD    fixed.Int `json:"available_borrow_usd"`
	LiquidationThreshold  fixed.Int `json:"liquidation_threshold"`
	HealthFactor          fixed.Int `json:"health_factor"`
}

// Healthy health factor >= 1
func (v *Valuation) Healthy() bool {
	return !v.HealthFactor.LessThan(fixed.Scale)
}

// AccountPosition position with its interest inclusive balances
type AccountPosition struct {
	*Position
	Underlying fixed.Int `json:"underlying"`
	Debt       fixed.Int `json:"debt"`
}

// Account positions and valuation of one user
type Account struct {
	UserID    string             `json:"user_id"`
	Positions []*AccountPosition `json:"positions"`
	Valuation *Valuation         `json:"valuation"`
}

// IAccountService position valuation interface
type IAccountService interface {
	// Valuation values the account from the ledger's working positions,
	// accruing every market the user owes debt in first
	Valuation(ctx context.Context, l ILedger, userID string, now time.Time) (*Valuation, error)
	// Price safe price of a market asset
	Price(ctx context.Context, symbol string) (fixed.Int, error)
}

// LiquidationRequest liquidation input
type LiquidationRequest struct {
	Liquidator       string    `json:"liquidator"`
	Borrower         string    `json:"borrower"`
	RepaySymbol      string    `json:"repay_symbol"`
	RepayAmount      fixed.Int `json:"repay_amount"`
	CollateralSymbol string    `json:"collateral_symbol"`
}

// LiquidationResult liquidation outcome
type LiquidationResult struct {
	ActualRepay      fixed.Int `json:"actual_repay"`
	RepayValueUSD    fixed.Int `json:"repay_value_usd"`
	BonusValueUSD    fixed.Int `json:"bonus_value_usd"`
	CollateralSeized fixed.Int `json:"collateral_seized"`
	HealthFactor     fixed.Int `json:"health_factor"`
}

// ILiquidationService liquidation engine interface
type ILiquidationService interface {
	Liquidate(ctx context.Context, l ILedger, req *LiquidationRequest, now time.Time) (*LiquidationResult, error)
}
