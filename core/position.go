package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// PositionKind names one independently persisted field of a position
type PositionKind string

const (
	// PositionKindShares supply shares
	PositionKindShares PositionKind = "shares"
	// PositionKindCollateral collateral deposited for borrowing power
	PositionKindCollateral PositionKind = "collateral"
	// PositionKindDebtPrincipal principal at the last capitalization
	PositionKindDebtPrincipal PositionKind = "debt_principal"
	// PositionKindDebtIndex borrow index at the last capitalization
	PositionKindDebtIndex PositionKind = "debt_index"
)

// PositionKinds all position kinds
var PositionKinds = []PositionKind{
	PositionKindShares,
	PositionKindCollateral,
	PositionKindDebtPrincipal,
	PositionKindDebtIndex,
}

// PositionEntry persisted row of a position field, keyed by (user, symbol, kind)
type PositionEntry struct {
	ID        uint64       `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string       `sql:"size:64;unique_index:position_entry_idx" json:"user_id"`
	Symbol    string       `sql:"size:20;unique_index:position_entry_idx" json:"symbol"`
	Kind      PositionKind `sql:"size:20;unique_index:position_entry_idx" json:"kind"`
	Amount    fixed.Int    `sql:"type:numeric(78);default:0" json:"amount"`
	CreatedAt time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Position a user's balances in one market
type Position struct {
	UserID        string    `json:"user_id"`
	Symbol        string    `json:"symbol"`
	Shares        fixed.Int `json:"shares"`
	Collateral    fixed.Int `json:"collateral"`
	DebtPrincipal fixed.Int `json:"debt_principal"`
	DebtIndex     fixed.Int `json:"debt_index"`
}

// NewPosition zero position
func NewPosition(userID, symbol string) *Position {
	return &Position{
		UserID: userID,
		Symbol: symbol,
	}
}

// Get field by kind
func (p *Position) Get(kind PositionKind) fixed.Int {
	switch kind {
	case PositionKindShares:
		return p.Shares
	case PositionKindCollateral:
		return p.Collateral
	case PositionKindDebtPrincipal:
		return p.DebtPrincipal
	case PositionKindDebtIndex:
		return p.DebtIndex
	}

	return fixed.Zero
}

// Set field by kind
func (p *Position) Set(kind PositionKind, v fixed.Int) {
	switch kind {
	case PositionKindShares:
		p.Shares = v
	case PositionKindCollateral:
		p.Collateral = v
	case PositionKindDebtPrincipal:
		p.DebtPrincipal = v
	case PositionKindDebtIndex:
		p.DebtIndex = v
	}
}

// Entry entry of the given kind
func (p *Position) Entry(kind PositionKind) *PositionEntry {
	return &PositionEntry{
		UserID: p.UserID,
		Symbol: p.Symbol,
		Kind:   kind,
		Amount: p.Get(kind),
	}
}

// IsEmpty all balances are zero
func (p *Position) IsEmpty() bool {
	return p.Shares.IsZero() && p.Collateral.IsZero() && p.DebtPrincipal.IsZero()
}

// IPositionStore position store interface
type IPositionStore interface {
	Save(ctx context.Context, tx *db.DB, entry *PositionEntry) error
	Find(ctx context.Context, userID, symbol string) (*Position, error)
	FindByUser(ctx context.Context, userID string) ([]*Position, error)
	FindBySymbol(ctx context.Context, symbol string, kind PositionKind) ([]*PositionEntry, error)
}
