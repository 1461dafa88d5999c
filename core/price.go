package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Price latest USD price of an asset, scaled by fixed.Scale
type Price struct {
	ID          uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Symbol      string    `sql:"size:20;unique_index:price_symbol_idx" json:"symbol"`
	Price       fixed.Int `sql:"type:numeric(78);default:0" json:"price"`
	PublishedAt int64     `sql:"default:0" json:"published_at"`
	CreatedAt   time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, tx *db.DB, price *Price) error
	Find(ctx context.Context, symbol string) (*Price, error)
	All(ctx context.Context) ([]*Price, error)
}

// IPriceSource read side of the oracle. A zero price means unset.
type IPriceSource interface {
	GetPrice(ctx context.Context, symbol string) (fixed.Int, error)
	IsStale(ctx context.Context, symbol string) (bool, error)
}

// IOracleService price oracle interface
type IOracleService interface {
	IPriceSource
	// SafePrice fails closed on unset or stale prices
	SafePrice(ctx context.Context, symbol string) (fixed.Int, error)
	SetPrice(ctx context.Context, operator, symbol string, price fixed.Int) error
	SetPrices(ctx context.Context, operator string, prices map[string]fixed.Int) error
	// CrashPrice halves the price of symbol
	CrashPrice(ctx context.Context, operator, symbol string) (fixed.Int, error)
	Prices(ctx context.Context) ([]*Price, error)
}

// ValueInUSD amount * price
func ValueInUSD(amount, price fixed.Int) (fixed.Int, error) {
	return fixed.MulDiv(amount, price, fixed.Scale)
}

// AmountFromUSD usd / price
func AmountFromUSD(usd, price fixed.Int) (fixed.Int, error) {
	if price.IsZero() {
		return fixed.Zero, ErrPriceUnavailable
	}

	return fixed.MulDiv(usd, fixed.Scale, price)
}
