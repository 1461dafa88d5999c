package views

import (
	"github.com/shopspring/decimal"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Market market view, amounts in whole asset units and rates as fractions
type Market struct {
	Symbol               string          `json:"symbol"`
	TotalSupply          decimal.Decimal `json:"total_supply"`
	TotalShares          decimal.Decimal `json:"total_shares"`
	TotalBorrow          decimal.Decimal `json:"total_borrow"`
	TotalReserves        decimal.Decimal `json:"total_reserves"`
	Liquidity            decimal.Decimal `json:"liquidity"`
	ExchangeRate         decimal.Decimal `json:"exchange_rate"`
	BorrowIndex          decimal.Decimal `json:"borrow_index"`
	Utilization          decimal.Decimal `json:"utilization"`
	BorrowAPR            decimal.Decimal `json:"borrow_apr"`
	SupplyAPR            decimal.Decimal `json:"supply_apr"`
	ReserveFactor        decimal.Decimal `json:"reserve_factor"`
	LTV                  decimal.Decimal `json:"ltv"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	CollateralEnabled    bool            `json:"collateral_enabled"`
	BorrowEnabled        bool            `json:"borrow_enabled"`
	LastAccrualTime      int64           `json:"last_accrual_time"`
}

func scaled(v fixed.Int) decimal.Decimal {
	return v.Decimal(fixed.ScaleDecimals)
}

func indexed(v fixed.Int) decimal.Decimal {
	return v.Decimal(fixed.IndexDecimals)
}

// MarketView render market info
func MarketView(info *core.MarketInfo) Market {
	return Market{
		Symbol:               info.Symbol,
		TotalSupply:          scaled(info.TotalSupply),
		TotalShares:          scaled(info.TotalShares),
		TotalBorrow:          scaled(info.TotalBorrow),
		TotalReserves:        scaled(info.TotalReserves),
		Liquidity:            scaled(info.Liquidity),
		ExchangeRate:         indexed(info.ExchangeRate),
		BorrowIndex:          indexed(info.BorrowIndex),
		Utilization:          scaled(info.Utilization),
		BorrowAPR:            scaled(info.BorrowRate),
		SupplyAPR:            scaled(info.SupplyRate),
		ReserveFactor:        scaled(info.ReserveFactor),
		LTV:                  scaled(info.LTV),
		LiquidationThreshold: scaled(info.LiquidationThreshold),
		CollateralEnabled:    info.CollateralEnabled,
		BorrowEnabled:        info.BorrowEnabled,
		LastAccrualTime:      info.LastAccrualTime,
	}
}
