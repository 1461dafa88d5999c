package core

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Market per asset ledger of supply, borrow and the compounding index.
// Amounts and ratios are scaled by fixed.Scale, ExchangeRate and
// BorrowIndex by fixed.IndexScale.
type Market struct {
	ID                   uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Symbol               string    `sql:"size:20;unique_index:market_symbol_idx" json:"symbol"`
	TotalSupply          fixed.Int `sql:"type:numeric(78);default:0" json:"total_supply"`
	TotalShares          fixed.Int `sql:"type:numeric(78);default:0" json:"total_shares"`
	TotalBorrow          fixed.Int `sql:"type:numeric(78);default:0" json:"total_borrow"`
	TotalReserves        fixed.Int `sql:"type:numeric(78);default:0" json:"total_reserves"`
	ExchangeRate         fixed.Int `sql:"type:numeric(78);default:0" json:"exchange_rate"`
	BorrowIndex          fixed.Int `sql:"type:numeric(78);default:0" json:"borrow_index"`
	LastAccrualTime      int64     `sql:"default:0" json:"last_accrual_time"`
	ReserveFactor        fixed.Int `sql:"type:numeric(78);default:0" json:"reserve_factor"`
	LTV                  fixed.Int `sql:"type:numeric(78);default:0" json:"ltv"`
	LiquidationThreshold fixed.Int `sql:"type:numeric(78);default:0" json:"liquidation_threshold"`
	CollateralEnabled    bool      `json:"collateral_enabled"`
	BorrowEnabled        bool      `json:"borrow_enabled"`
	Version              int64     `sql:"default:0" json:"version"`
	CreatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Liquidity total_supply - total_borrow
func (m *Market) Liquidity() fixed.Int {
	return m.TotalSupply.SubFloor(m.TotalBorrow)
}

// MarketParams risk parameters of a new market
type MarketParams struct {
	Symbol               string    `json:"symbol"`
	LTV                  fixed.Int `json:"ltv"`
	LiquidationThreshold fixed.Int `json:"liquidation_threshold"`
	ReserveFactor        fixed.Int `json:"reserve_factor"`
	CollateralEnabled    bool      `json:"collateral_enabled"`
	BorrowEnabled        bool      `json:"borrow_enabled"`
	InitialPrice         fixed.Int `json:"initial_price"`
}

// Validate ltv <= liquidation_threshold <= 100%, reserve_factor < 100%
func (p *MarketParams) Validate() error {
	if !IsSymbol(p.Symbol) {
		return ErrInvalidParameter
	}

	if p.LTV.GreaterThan(p.LiquidationThreshold) || p.LiquidationThreshold.GreaterThan(fixed.Scale) {
		return ErrInvalidParameter
	}

	if !p.ReserveFactor.LessThan(fixed.Scale) {
		return ErrInvalidParameter
	}

	return nil
}

// IsSymbol upper case alphanumeric asset symbol
func IsSymbol(symbol string) bool {
	return symbol != "" &&
		len(symbol) <= 20 &&
		govalidator.IsAlphanumeric(symbol) &&
		govalidator.IsUpperCase(symbol)
}

// MarketInfo market with its derived rates
type MarketInfo struct {
	*Market
	Utilization         fixed.Int `json:"utilization"`
	BorrowRate          fixed.Int `json:"borrow_rate"`
	SupplyRate          fixed.Int `json:"supply_rate"`
	BorrowRatePerSecond fixed.Int `json:"borrow_rate_per_second"`
	Liquidity           fixed.Int `json:"liquidity"`
}

// IMarketStore market store interface
type IMarketStore interface {
	Create(ctx context.Context, tx *db.DB, market *Market) error
	Update(ctx context.Context, tx *db.DB, market *Market) error
	Find(ctx context.Context, symbol string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
}

// IMarketService market accrual and rate interface
type IMarketService interface {
	// Accrue applies the interest accumulated since the last accrual
	Accrue(ctx context.Context, market *Market, now time.Time) error
	Utilization(market *Market) (fixed.Int, error)
	ExchangeRate(market *Market) (fixed.Int, error)
	BorrowRate(market *Market) (fixed.Int, error)
	SupplyRate(market *Market) (fixed.Int, error)
	// Debt interest inclusive debt of a position
	Debt(market *Market, position *Position) (fixed.Int, error)
	Info(ctx context.Context, market *Market) (*MarketInfo, error)
}
