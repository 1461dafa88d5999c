package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/yiplee/structs"
)

const (
	// TransactionKeyShares shares minted or burned
	TransactionKeyShares = "shares"
	// TransactionKeyUnderlying underlying paid out
	TransactionKeyUnderlying = "underlying"
	// TransactionKeyDebt debt after the operation
	TransactionKeyDebt = "debt"
	// TransactionKeyHealthFactor health factor after the operation
	TransactionKeyHealthFactor = "health_factor"
	// TransactionKeyReserveFactor reserve factor
	TransactionKeyReserveFactor = "reserve_factor"
)

// TransactionExtraData extra data
type TransactionExtraData map[string]interface{}

// NewTransactionExtra new transaction extra instance
func NewTransactionExtra() TransactionExtraData {
	return make(TransactionExtraData)
}

// Put put data
func (t TransactionExtraData) Put(key string, value interface{}) {
	t[key] = value
}

// PutStruct put every exported field of v, keyed by its json tag
func (t TransactionExtraData) PutStruct(v interface{}) {
	for k, val := range structs.Map(v) {
		t[k] = val
	}
}

// Format format as []byte by default
func (t TransactionExtraData) Format() []byte {
	bs, e := json.Marshal(t)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// Transaction audit record of a committed pool operation
type Transaction struct {
	ID        uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Action    ActionType     `sql:"size:32" json:"action,omitempty"`
	TraceID   string         `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id,omitempty"`
	UserID    string         `sql:"size:64;index:idx_transactions_user_id" json:"user_id,omitempty"`
	Symbol    string         `sql:"size:20" json:"symbol,omitempty"`
	Amount    fixed.Int      `sql:"type:numeric(78)" json:"amount,omitempty"`
	Data      types.JSONText `sql:"type:TEXT" json:"data,omitempty"`
	Timestamp int64          `json:"timestamp,omitempty"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP;index:idx_transactions_created_at" json:"created_at,omitempty"`
}

// SetExtraData set data
func (t *Transaction) SetExtraData(extra TransactionExtraData) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	t.Data = data
}

// ITransactionStore transaction store interface
type ITransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	ListByUser(ctx context.Context, userID string, offset uint64, limit int) ([]*Transaction, error)
}
