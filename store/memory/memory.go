// Package memory keeps every store in process. It backs the tests and
// dry runs of the cli.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/core"
)

type entryKey struct {
	userID string
	symbol string
	kind   core.PositionKind
}

// Store in memory backend
type Store struct {
	mu           sync.RWMutex
	seq          uint64
	markets      map[string]*core.Market
	entries      map[entryKey]*core.PositionEntry
	prices       map[string]*core.Price
	transfers    []*core.Transfer
	transactions []*core.Transaction
}

// New new in memory backend
func New() *Store {
	return &Store{
		markets: map[string]*core.Market{},
		entries: map[entryKey]*core.PositionEntry{},
		prices:  map[string]*core.Price{},
	}
}

func (s *Store) nextID() uint64 {
	s.seq++
	return s.seq
}

// Commit apply the changeset, nothing is written if any check fails
func (s *Store) Commit(ctx context.Context, cs *core.Changeset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range cs.NewMarkets {
		if _, ok := s.markets[m.Symbol]; ok {
			return core.ErrAlreadyInitialized
		}
	}

	for _, m := range cs.Markets {
		stored, ok := s.markets[m.Symbol]
		if !ok {
			return core.ErrMarketNotFound
		}

		if stored.Version != m.Version {
			return core.ErrConflict
		}
	}

	for _, m := range cs.NewMarkets {
		s.createMarket(m)
	}

	for _, m := range cs.Markets {
		s.updateMarket(m)
	}

	for _, e := range cs.Entries {
		s.saveEntry(e)
	}

	for _, p := range cs.Prices {
		s.savePrice(p)
	}

	for _, t := range cs.Transfers {
		s.createTransfer(t)
	}

	for _, t := range cs.Transactions {
		s.createTransaction(t)
	}

	return nil
}

func (s *Store) createMarket(m *core.Market) {
	m.ID = s.nextID()
	cp := *m
	s.markets[m.Symbol] = &cp
}

func (s *Store) updateMarket(m *core.Market) {
	m.Version++
	cp := *m
	s.markets[m.Symbol] = &cp
}

func (s *Store) saveEntry(e *core.PositionEntry) {
	key := entryKey{userID: e.UserID, symbol: e.Symbol, kind: e.Kind}
	if stored, ok := s.entries[key]; ok {
		stored.Amount = e.Amount
		e.ID = stored.ID
		return
	}

	e.ID = s.nextID()
	cp := *e
	s.entries[key] = &cp
}

func (s *Store) savePrice(p *core.Price) {
	if stored, ok := s.prices[p.Symbol]; ok {
		p.ID = stored.ID
	} else {
		p.ID = s.nextID()
	}

	cp := *p
	s.prices[p.Symbol] = &cp
}

func (s *Store) createTransfer(t *core.Transfer) {
	for _, stored := range s.transfers {
		if stored.TraceID == t.TraceID {
			return
		}
	}

	t.ID = s.nextID()
	cp := *t
	s.transfers = append(s.transfers, &cp)
}

func (s *Store) createTransaction(t *core.Transaction) {
	t.ID = s.nextID()
	cp := *t
	s.transactions = append(s.transactions, &cp)
}

// Markets market store view
func (s *Store) Markets() core.IMarketStore {
	return (*marketStore)(s)
}

// Positions position store view
func (s *Store) Positions() core.IPositionStore {
	return (*positionStore)(s)
}

// Prices price store view
func (s *Store) Prices() core.IPriceStore {
	return (*priceStore)(s)
}

// Transfers transfer store view
func (s *Store) Transfers() core.ITransferStore {
	return (*transferStore)(s)
}

// Transactions transaction store view
func (s *Store) Transactions() core.ITransactionStore {
	return (*transactionStore)(s)
}

type marketStore Store

func (s *marketStore) Create(_ context.Context, _ *db.DB, market *core.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.markets[market.Symbol]; ok {
		return core.ErrAlreadyInitialized
	}

	(*Store)(s).createMarket(market)
	return nil
}

func (s *marketStore) Update(_ context.Context, _ *db.DB, market *core.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.markets[market.Symbol]
	if !ok {
		return core.ErrMarketNotFound
	}

	if stored.Version != market.Version {
		return core.ErrConflict
	}

	(*Store)(s).updateMarket(market)
	return nil
}

func (s *marketStore) Find(_ context.Context, symbol string) (*core.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.markets[symbol]; ok {
		cp := *m
		return &cp, nil
	}

	return &core.Market{}, nil
}

func (s *marketStore) All(_ context.Context) ([]*core.Market, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	markets := make([]*core.Market, 0, len(s.markets))
	for _, m := range s.markets {
		cp := *m
		markets = append(markets, &cp)
	}

	sort.Slice(markets, func(i, j int) bool {
		return markets[i].Symbol < markets[j].Symbol
	})

	return markets, nil
}

type positionStore Store

func (s *positionStore) Save(_ context.Context, _ *db.DB, entry *core.PositionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	(*Store)(s).saveEntry(entry)
	return nil
}

func (s *positionStore) Find(_ context.Context, userID, symbol string) (*core.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := core.NewPosition(userID, symbol)
	for _, kind := range core.PositionKinds {
		if e, ok := s.entries[entryKey{userID: userID, symbol: symbol, kind: kind}]; ok {
			p.Set(kind, e.Amount)
		}
	}

	return p, nil
}

func (s *positionStore) FindByUser(_ context.Context, userID string) ([]*core.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bySymbol := map[string]*core.Position{}
	for key, e := range s.entries {
		if key.userID != userID {
			continue
		}

		p, ok := bySymbol[key.symbol]
		if !ok {
			p = core.NewPosition(userID, key.symbol)
			bySymbol[key.symbol] = p
		}

		p.Set(key.kind, e.Amount)
	}

	positions := make([]*core.Position, 0, len(bySymbol))
	for _, p := range bySymbol {
		positions = append(positions, p)
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Symbol < positions[j].Symbol
	})

	return positions, nil
}

func (s *positionStore) FindBySymbol(_ context.Context, symbol string, kind core.PositionKind) ([]*core.PositionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*core.PositionEntry
	for key, e := range s.entries {
		if key.symbol == symbol && key.kind == kind {
			cp := *e
			entries = append(entries, &cp)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UserID < entries[j].UserID
	})

	return entries, nil
}

type priceStore Store

func (s *priceStore) Save(_ context.Context, _ *db.DB, price *core.Price) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	(*Store)(s).savePrice(price)
	return nil
}

func (s *priceStore) Find(_ context.Context, symbol string) (*core.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.prices[symbol]; ok {
		cp := *p
		return &cp, nil
	}

	return &core.Price{Symbol: symbol}, nil
}

func (s *priceStore) All(_ context.Context) ([]*core.Price, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make([]*core.Price, 0, len(s.prices))
	for _, p := range s.prices {
		cp := *p
		prices = append(prices, &cp)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Symbol < prices[j].Symbol
	})

	return prices, nil
}

type transferStore Store

func (s *transferStore) Create(_ context.Context, _ *db.DB, transfer *core.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	(*Store)(s).createTransfer(transfer)
	return nil
}

func (s *transferStore) Delete(_ context.Context, _ *db.DB, ids ...uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := map[uint64]bool{}
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.transfers[:0]
	for _, t := range s.transfers {
		if !drop[t.ID] {
			kept = append(kept, t)
		}
	}

	s.transfers = kept
	return nil
}

func (s *transferStore) Top(_ context.Context, limit int) ([]*core.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transfers []*core.Transfer
	for _, t := range s.transfers {
		if len(transfers) >= limit {
			break
		}

		cp := *t
		transfers = append(transfers, &cp)
	}

	return transfers, nil
}

type transactionStore Store

func (s *transactionStore) Create(_ context.Context, _ *db.DB, transaction *core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	(*Store)(s).createTransaction(transaction)
	return nil
}

func (s *transactionStore) FindByTraceID(_ context.Context, traceID string) (*core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.TraceID == traceID {
			cp := *t
			return &cp, nil
		}
	}

	return &core.Transaction{}, nil
}

func (s *transactionStore) ListByUser(_ context.Context, userID string, offset uint64, limit int) ([]*core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transactions []*core.Transaction
	for _, t := range s.transactions {
		if t.UserID != userID || t.ID <= offset {
			continue
		}

		if len(transactions) >= limit {
			break
		}

		cp := *t
		transactions = append(transactions, &cp)
	}

	return transactions, nil
}
