package price

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/y4hyya/Stellend/core"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})

		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Save(ctx context.Context, tx *db.DB, price *core.Price) error {
	return tx.Update().
		Where("symbol=?", price.Symbol).
		Assign(map[string]interface{}{
			"price":        price.Price,
			"published_at": price.PublishedAt,
		}).
		FirstOrCreate(price).Error
}

func (s *priceStore) Find(ctx context.Context, symbol string) (*core.Price, error) {
	price := core.Price{Symbol: symbol}
	if e := s.db.View().Where("symbol=?", symbol).First(&price).Error; e != nil {
		if gorm.IsRecordNotFoundError(e) {
			return &price, nil
		}

		return nil, e
	}

	return &price, nil
}

func (s *priceStore) All(ctx context.Context) ([]*core.Price, error) {
	var prices []*core.Price
	if e := s.db.View().Order("symbol").Find(&prices).Error; e != nil {
		return nil, e
	}

	return prices, nil
}
