package core

import (
	"context"

	"github.com/y4hyya/Stellend/pkg/fixed"
)

// ILedger per operation view over markets and positions. Reads are cached,
// writes are staged and only reach storage through an ILedgerStore commit.
type ILedger interface {
	Market(ctx context.Context, symbol string) (*Market, error)
	Markets(ctx context.Context) ([]*Market, error)
	CreateMarket(ctx context.Context, market *Market) error
	Position(ctx context.Context, userID, symbol string) (*Position, error)
	SetPrice(price *Price)
	Transfer(symbol, sender, receiver string, amount fixed.Int, memo string)
	Record(transaction *Transaction)
	Changeset() *Changeset
}

// Changeset staged writes of one operation
type Changeset struct {
	NewMarkets   []*Market
	Markets      []*Market
	Entries      []*PositionEntry
	Prices       []*Price
	Transfers    []*Transfer
	Transactions []*Transaction
}

// Empty nothing to commit
func (c *Changeset) Empty() bool {
	return len(c.NewMarkets) == 0 &&
		len(c.Markets) == 0 &&
		len(c.Entries) == 0 &&
		len(c.Prices) == 0 &&
		len(c.Transfers) == 0 &&
		len(c.Transactions) == 0
}

// ILedgerStore applies a changeset all or nothing
type ILedgerStore interface {
	Commit(ctx context.Context, changes *Changeset) error
}
