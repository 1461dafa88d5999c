package views

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/y4hyya/Stellend/core"
)

// Price price view
type Price struct {
	Symbol      string          `json:"symbol"`
	Price       decimal.Decimal `json:"price"`
	PublishedAt time.Time       `json:"published_at"`
	Stale       bool            `json:"stale"`
}

// PriceView render price
func PriceView(p *core.Price, stale bool) Price {
	return Price{
		Symbol:      p.Symbol,
		Price:       scaled(p.Price),
		PublishedAt: time.Unix(p.PublishedAt, 0).UTC(),
		Stale:       stale,
	}
}

// Transaction transaction view
type Transaction struct {
	ID        uint64                 `json:"id"`
	Action    string                 `json:"action"`
	TraceID   string                 `json:"trace_id"`
	Symbol    string                 `json:"symbol,omitempty"`
	Amount    decimal.Decimal        `json:"amount"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// TransactionView render transaction
func TransactionView(t *core.Transaction) Transaction {
	view := Transaction{
		ID:        t.ID,
		Action:    t.Action.String(),
		TraceID:   t.TraceID,
		Symbol:    t.Symbol,
		Amount:    scaled(t.Amount),
		Timestamp: time.Unix(t.Timestamp, 0).UTC(),
	}

	_ = t.Data.Unmarshal(&view.Data)
	return view
}
