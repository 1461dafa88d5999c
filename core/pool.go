package core

import (
	"context"

	"github.com/y4hyya/Stellend/pkg/fixed"
)

// IPoolService lending pool entry points. Every call accrues the markets it
// touches and commits all of its writes or none of them.
type IPoolService interface {
	Initialize(ctx context.Context, operator string, markets []*MarketParams) error
	InitMarket(ctx context.Context, operator string, params *MarketParams) error
	SetReserveFactor(ctx context.Context, operator, symbol string, reserveFactor fixed.Int) error

	Supply(ctx context.Context, userID, symbol string, amount fixed.Int) (fixed.Int, error)
	Withdraw(ctx context.Context, userID, symbol string, shares fixed.Int) (fixed.Int, error)
	DepositCollateral(ctx context.Context, userID, symbol string, amount fixed.Int) error
	WithdrawCollateral(ctx context.Context, userID, symbol string, amount fixed.Int) error
	Borrow(ctx context.Context, userID, symbol string, amount fixed.Int) error
	Repay(ctx context.Context, userID, symbol string, amount fixed.Int) (fixed.Int, error)
	Liquidate(ctx context.Context, req *LiquidationRequest) (*LiquidationResult, error)
	AccrueAll(ctx context.Context) error

	MarketInfo(ctx context.Context, symbol string) (*MarketInfo, error)
	Markets(ctx context.Context) ([]*MarketInfo, error)
	Position(ctx context.Context, userID, symbol string) (*AccountPosition, error)
	Account(ctx context.Context, userID string) (*Account, error)
	HealthFactor(ctx context.Context, userID string) (fixed.Int, error)
}
