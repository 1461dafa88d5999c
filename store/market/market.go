package market

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/y4hyya/Stellend/core"
)

type marketStore struct {
	db *db.DB
}

// New new market store
func New(db *db.DB) core.IMarketStore {
	return &marketStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Market{})
		if err := tx.AutoMigrate(core.Market{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *marketStore) Create(ctx context.Context, tx *db.DB, market *core.Market) error {
	return tx.Update().Create(market).Error
}

// Update writes the accounting fields guarded by the row version
func (s *marketStore) Update(ctx context.Context, tx *db.DB, market *core.Market) error {
	version := market.Version
	market.Version++

	r := tx.Update().Model(core.Market{}).Where("symbol=? and version=?", market.Symbol, version).Updates(map[string]interface{}{
		"total_supply":          market.TotalSupply,
		"total_shares":          market.TotalShares,
		"total_borrow":          market.TotalBorrow,
		"total_reserves":        market.TotalReserves,
		"exchange_rate":         market.ExchangeRate,
		"borrow_index":          market.BorrowIndex,
		"last_accrual_time":     market.LastAccrualTime,
		"reserve_factor":        market.ReserveFactor,
		"ltv":                   market.LTV,
		"liquidation_threshold": market.LiquidationThreshold,
		"collateral_enabled":    market.CollateralEnabled,
		"borrow_enabled":        market.BorrowEnabled,
		"version":               market.Version,
	})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected == 0 {
		return core.ErrConflict
	}

	return nil
}

func (s *marketStore) Find(ctx context.Context, symbol string) (*core.Market, error) {
	var market core.Market
	if err := s.db.View().Where("symbol=?", symbol).First(&market).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &market, nil
		}

		return nil, err
	}

	return &market, nil
}

func (s *marketStore) All(ctx context.Context) ([]*core.Market, error) {
	var markets []*core.Market
	if err := s.db.View().Order("symbol").Find(&markets).Error; err != nil {
		return nil, err
	}

	return markets, nil
}
