package ledger

import (
	"context"
	"sort"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/id"
)

type positionKey struct {
	userID string
	symbol string
}

// Ledger stages the writes of one pool operation.
//
// Records are loaded once and handed out as working copies; Changeset
// compares them with the loaded originals so only modified markets and
// position fields are written back.
type Ledger struct {
	traceID   string
	markets   core.IMarketStore
	positions core.IPositionStore

	loadedAll  bool
	original   map[string]core.Market
	working    map[string]*core.Market
	newMarkets []string

	originalPositions map[positionKey]core.Position
	workingPositions  map[positionKey]*core.Position
	positionOrder     []positionKey

	prices       []*core.Price
	transfers    []*core.Transfer
	transactions []*core.Transaction
}

// New new ledger, traceID seeds the ids of staged transfers
func New(traceID string, markets core.IMarketStore, positions core.IPositionStore) *Ledger {
	return &Ledger{
		traceID:           traceID,
		markets:           markets,
		positions:         positions,
		original:          map[string]core.Market{},
		working:           map[string]*core.Market{},
		originalPositions: map[positionKey]core.Position{},
		workingPositions:  map[positionKey]*core.Position{},
	}
}

// TraceID trace of the operation
func (l *Ledger) TraceID() string {
	return l.traceID
}

// Market working copy of the market, ErrMarketNotFound if missing
func (l *Ledger) Market(ctx context.Context, symbol string) (*core.Market, error) {
	if m, ok := l.working[symbol]; ok {
		return m, nil
	}

	if l.loadedAll {
		return nil, core.ErrMarketNotFound
	}

	m, err := l.markets.Find(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if m.ID == 0 {
		return nil, core.ErrMarketNotFound
	}

	l.track(m)
	return m, nil
}

// Markets all markets ordered by symbol
func (l *Ledger) Markets(ctx context.Context) ([]*core.Market, error) {
	if !l.loadedAll {
		markets, err := l.markets.All(ctx)
		if err != nil {
			return nil, err
		}

		for _, m := range markets {
			if _, ok := l.working[m.Symbol]; !ok {
				l.track(m)
			}
		}

		l.loadedAll = true
	}

	return l.Loaded(), nil
}

// Loaded markets read or created so far, ordered by symbol
func (l *Ledger) Loaded() []*core.Market {
	markets := make([]*core.Market, 0, len(l.working))
	for _, m := range l.working {
		markets = append(markets, m)
	}

	sort.Slice(markets, func(i, j int) bool {
		return markets[i].Symbol < markets[j].Symbol
	})

	return markets
}

func (l *Ledger) track(m *core.Market) {
	l.original[m.Symbol] = *m
	l.working[m.Symbol] = m
}

// CreateMarket stage a new market, ErrAlreadyInitialized if the symbol exists
func (l *Ledger) CreateMarket(ctx context.Context, market *core.Market) error {
	if _, err := l.Market(ctx, market.Symbol); err == nil {
		return core.ErrAlreadyInitialized
	} else if err != core.ErrMarketNotFound {
		return err
	}

	l.working[market.Symbol] = market
	l.newMarkets = append(l.newMarkets, market.Symbol)
	return nil
}

// Position working copy of the position, zero valued if the user never touched the market
func (l *Ledger) Position(ctx context.Context, userID, symbol string) (*core.Position, error) {
	key := positionKey{userID: userID, symbol: symbol}
	if p, ok := l.workingPositions[key]; ok {
		return p, nil
	}

	p, err := l.positions.Find(ctx, userID, symbol)
	if err != nil {
		return nil, err
	}

	l.originalPositions[key] = *p
	l.workingPositions[key] = p
	l.positionOrder = append(l.positionOrder, key)
	return p, nil
}

// SetPrice stage a price update
func (l *Ledger) SetPrice(price *core.Price) {
	l.prices = append(l.prices, price)
}

// Transfer stage a custody transfer
func (l *Ledger) Transfer(symbol, sender, receiver string, amount fixed.Int, memo string) {
	if amount.IsZero() {
		return
	}

	l.transfers = append(l.transfers, &core.Transfer{
		TraceID:  id.ChildTraceID(l.traceID, len(l.transfers)+1),
		Symbol:   symbol,
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Memo:     memo,
	})
}

// Record stage an audit transaction
func (l *Ledger) Record(transaction *core.Transaction) {
	l.transactions = append(l.transactions, transaction)
}

// Changeset everything staged so far
func (l *Ledger) Changeset() *core.Changeset {
	cs := &core.Changeset{
		Prices:       l.prices,
		Transfers:    l.transfers,
		Transactions: l.transactions,
	}

	isNew := map[string]bool{}
	for _, symbol := range l.newMarkets {
		isNew[symbol] = true
		cs.NewMarkets = append(cs.NewMarkets, l.working[symbol])
	}

	symbols := make([]string, 0, len(l.working))
	for symbol := range l.working {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		if isNew[symbol] {
			continue
		}

		if m := l.working[symbol]; *m != l.original[symbol] {
			cs.Markets = append(cs.Markets, m)
		}
	}

	for _, key := range l.positionOrder {
		p, orig := l.workingPositions[key], l.originalPositions[key]
		for _, kind := range core.PositionKinds {
			if !p.Get(kind).Equal(orig.Get(kind)) {
				cs.Entries = append(cs.Entries, p.Entry(kind))
			}
		}
	}

	return cs
}

// Commit write the changeset through store
func (l *Ledger) Commit(ctx context.Context, store core.ILedgerStore) error {
	cs := l.Changeset()
	if cs.Empty() {
		return nil
	}

	return store.Commit(ctx, cs)
}
