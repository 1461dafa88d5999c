package oracle

import (
	"context"
	"sort"
	"time"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// DefaultStaleThreshold prices older than this are stale
const DefaultStaleThreshold = time.Hour

// Config oracle config
type Config struct {
	Admins         []string
	StaleThreshold time.Duration
	RejectStale    bool
}

type service struct {
	cfg     Config
	clock   clock.Clock
	prices  core.IPriceStore
	ledgers core.ILedgerStore
}

// New new price oracle. Prices are read from prices and written through
// ledgers so they commit like every other state change.
func New(cfg Config, clock clock.Clock, prices core.IPriceStore, ledgers core.ILedgerStore) core.IOracleService {
	if cfg.StaleThreshold <= 0 {
		cfg.StaleThreshold = DefaultStaleThreshold
	}

	return &service{
		cfg:     cfg,
		clock:   clock,
		prices:  prices,
		ledgers: ledgers,
	}
}

func (s *service) isAdmin(operator string) bool {
	for _, a := range s.cfg.Admins {
		if a == operator {
			return true
		}
	}

	return false
}

func (s *service) GetPrice(ctx context.Context, symbol string) (fixed.Int, error) {
	p, err := s.prices.Find(ctx, symbol)
	if err != nil {
		return fixed.Zero, err
	}

	return p.Price, nil
}

func (s *service) IsStale(ctx context.Context, symbol string) (bool, error) {
	p, err := s.prices.Find(ctx, symbol)
	if err != nil {
		return false, err
	}

	if p.ID == 0 {
		return true, nil
	}

	age := s.clock.Now().Unix() - p.PublishedAt
	return age > int64(s.cfg.StaleThreshold/time.Second), nil
}

func (s *service) SafePrice(ctx context.Context, symbol string) (fixed.Int, error) {
	p, err := s.prices.Find(ctx, symbol)
	if err != nil {
		return fixed.Zero, err
	}

	if p.Price.IsZero() {
		return fixed.Zero, core.ErrPriceUnavailable
	}

	if s.cfg.RejectStale {
		if stale, err := s.IsStale(ctx, symbol); err != nil {
			return fixed.Zero, err
		} else if stale {
			return fixed.Zero, core.ErrPriceStale
		}
	}

	return p.Price, nil
}

func (s *service) SetPrice(ctx context.Context, operator, symbol string, price fixed.Int) error {
	return s.SetPrices(ctx, operator, map[string]fixed.Int{symbol: price})
}

func (s *service) SetPrices(ctx context.Context, operator string, prices map[string]fixed.Int) error {
	log := logger.FromContext(ctx).WithField("service", "oracle")

	if !s.isAdmin(operator) {
		return core.ErrUnauthorized
	}

	symbols := make([]string, 0, len(prices))
	for symbol, price := range prices {
		if !core.IsSymbol(symbol) || price.IsZero() {
			return core.ErrInvalidParameter
		}

		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	now := s.clock.Now().Unix()
	cs := &core.Changeset{}
	for _, symbol := range symbols {
		cs.Prices = append(cs.Prices, &core.Price{
			Symbol:      symbol,
			Price:       prices[symbol],
			PublishedAt: now,
		})
	}

	if err := s.ledgers.Commit(ctx, cs); err != nil {
		log.WithError(err).Errorln("commit prices")
		return err
	}

	for _, p := range cs.Prices {
		log.WithField("symbol", p.Symbol).Infoln("price set to", p.Price)
	}

	return nil
}

func (s *service) CrashPrice(ctx context.Context, operator, symbol string) (fixed.Int, error) {
	current, err := s.GetPrice(ctx, symbol)
	if err != nil {
		return fixed.Zero, err
	}

	if current.IsZero() {
		return fixed.Zero, core.ErrPriceUnavailable
	}

	crashed, err := current.Div(fixed.New(2))
	if err != nil {
		return fixed.Zero, err
	}

	if err := s.SetPrice(ctx, operator, symbol, crashed); err != nil {
		return fixed.Zero, err
	}

	return crashed, nil
}

func (s *service) Prices(ctx context.Context) ([]*core.Price, error) {
	return s.prices.All(ctx)
}
