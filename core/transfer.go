package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// PoolAccount custody account holding the pooled assets
const PoolAccount = "pool"

// Transfer custody instruction, written with the operation that caused it
// and executed by the transfer worker
type Transfer struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	TraceID   string    `sql:"size:36;unique_index:transfer_trace_idx" json:"trace_id,omitempty"`
	Symbol    string    `sql:"size:20" json:"symbol,omitempty"`
	Sender    string    `sql:"size:64" json:"sender,omitempty"`
	Receiver  string    `sql:"size:64" json:"receiver,omitempty"`
	Amount    fixed.Int `sql:"type:numeric(78)" json:"amount,omitempty"`
	Memo      string    `sql:"size:140" json:"memo,omitempty"`
}

// Inbound user to pool
func (t *Transfer) Inbound() bool {
	return t.Receiver == PoolAccount
}

// ITransferStore transfer store interface
type ITransferStore interface {
	Create(ctx context.Context, tx *db.DB, transfer *Transfer) error
	Delete(ctx context.Context, tx *db.DB, id ...uint64) error
	Top(ctx context.Context, limit int) ([]*Transfer, error)
}

// ICustody moves underlying assets between custody accounts
type ICustody interface {
	Transfer(ctx context.Context, transfer *Transfer) error
}
