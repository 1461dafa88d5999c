package custody

import (
	"context"
	"sync"

	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Book keeps the pool's holdings in process. Inbound transfers credit the
// pool, outbound transfers debit it.
type Book struct {
	mu       sync.Mutex
	holdings map[string]fixed.Int
	applied  map[string]bool
}

// NewBook empty book
func NewBook() *Book {
	return &Book{
		holdings: map[string]fixed.Int{},
		applied:  map[string]bool{},
	}
}

// Transfer apply the transfer once per trace id
func (b *Book) Transfer(ctx context.Context, t *core.Transfer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.applied[t.TraceID] {
		return nil
	}

	holding := b.holdings[t.Symbol]
	if t.Inbound() {
		v, err := holding.Add(t.Amount)
		if err != nil {
			return err
		}

		holding = v
	} else {
		if holding.LessThan(t.Amount) {
			return core.ErrInsufficientLiquidity
		}

		holding = holding.SubFloor(t.Amount)
	}

	b.holdings[t.Symbol] = holding
	b.applied[t.TraceID] = true

	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"symbol":   t.Symbol,
		"sender":   t.Sender,
		"receiver": t.Receiver,
		"amount":   t.Amount.String(),
	}).Debugln("book transfer")
	return nil
}

// Holding pool holding of symbol
func (b *Book) Holding(symbol string) fixed.Int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.holdings[symbol]
}
