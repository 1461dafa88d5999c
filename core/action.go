package core

// ActionType pool operation
type ActionType string

const (
	// ActionTypeInitMarket create market
	ActionTypeInitMarket ActionType = "init_market"
	// ActionTypeSupply supply
	ActionTypeSupply ActionType = "supply"
	// ActionTypeWithdraw redeem shares
	ActionTypeWithdraw ActionType = "withdraw"
	// ActionTypeDepositCollateral deposit collateral
	ActionTypeDepositCollateral ActionType = "deposit_collateral"
	// ActionTypeWithdrawCollateral withdraw collateral
	ActionTypeWithdrawCollateral ActionType = "withdraw_collateral"
	// ActionTypeBorrow borrow
	ActionTypeBorrow ActionType = "borrow"
	// ActionTypeRepay repay
	ActionTypeRepay ActionType = "repay"
	// ActionTypeLiquidate liquidate
	ActionTypeLiquidate ActionType = "liquidate"
	// ActionTypeSetReserveFactor update reserve factor
	ActionTypeSetReserveFactor ActionType = "set_reserve_factor"
	// ActionTypeAccrue keeper accrual
	ActionTypeAccrue ActionType = "accrue"
)

func (a ActionType) String() string {
	return string(a)
}
