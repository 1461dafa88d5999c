package position

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/core"
)

type positionStore struct {
	db *db.DB
}

// New new position store. Each position field is its own row so
// operations only write the fields they change.
func New(db *db.DB) core.IPositionStore {
	return &positionStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.PositionEntry{})
		if err := tx.AutoMigrate(core.PositionEntry{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *positionStore) Save(ctx context.Context, tx *db.DB, entry *core.PositionEntry) error {
	return tx.Update().
		Where("user_id=? and symbol=? and kind=?", entry.UserID, entry.Symbol, entry.Kind).
		Assign(map[string]interface{}{"amount": entry.Amount}).
		FirstOrCreate(entry).Error
}

func (s *positionStore) Find(ctx context.Context, userID, symbol string) (*core.Position, error) {
	var entries []*core.PositionEntry
	if err := s.db.View().Where("user_id=? and symbol=?", userID, symbol).Find(&entries).Error; err != nil {
		return nil, err
	}

	p := core.NewPosition(userID, symbol)
	for _, e := range entries {
		p.Set(e.Kind, e.Amount)
	}

	return p, nil
}

func (s *positionStore) FindByUser(ctx context.Context, userID string) ([]*core.Position, error) {
	var entries []*core.PositionEntry
	if err := s.db.View().Where("user_id=?", userID).Order("symbol").Find(&entries).Error; err != nil {
		return nil, err
	}

	var positions []*core.Position
	bySymbol := map[string]*core.Position{}
	for _, e := range entries {
		p, ok := bySymbol[e.Symbol]
		if !ok {
			p = core.NewPosition(userID, e.Symbol)
			bySymbol[e.Symbol] = p
			positions = append(positions, p)
		}

		p.Set(e.Kind, e.Amount)
	}

	return positions, nil
}

func (s *positionStore) FindBySymbol(ctx context.Context, symbol string, kind core.PositionKind) ([]*core.PositionEntry, error) {
	var entries []*core.PositionEntry
	if err := s.db.View().Where("symbol=? and kind=?", symbol, kind).Order("user_id").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
