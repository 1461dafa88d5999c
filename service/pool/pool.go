package pool

import (
	"context"
	"errors"
	"time"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/id"
	"github.com/y4hyya/Stellend/pkg/ledger"
)

// Config pool config
type Config struct {
	Admins []string
}

type service struct {
	cfg                Config
	clock              clock.Clock
	marketStore        core.IMarketStore
	positionStore      core.IPositionStore
	ledgerStore        core.ILedgerStore
	marketService      core.IMarketService
	accountService     core.IAccountService
	liquidationService core.ILiquidationService
}

// New new pool service
func New(
	cfg Config,
	clock clock.Clock,
	marketStr core.IMarketStore,
	positionStr core.IPositionStore,
	ledgerStr core.ILedgerStore,
	marketSrv core.IMarketService,
	accountSrv core.IAccountService,
	liquidationSrv core.ILiquidationService,
) core.IPoolService {
	return &service{
		cfg:                cfg,
		clock:              clock,
		marketStore:        marketStr,
		positionStore:      positionStr,
		ledgerStore:        ledgerStr,
		marketService:      marketSrv,
		accountService:     accountSrv,
		liquidationService: liquidationSrv,
	}
}

// operation describes one pool call for logging and the audit record
type operation struct {
	action core.ActionType
	userID string
	symbol string
	amount fixed.Int
	// silent operations are not recorded as transactions
	silent bool
}

type handler func(ctx context.Context, l *ledger.Ledger, now time.Time, extra core.TransactionExtraData) error

// execute runs fn against a fresh ledger and commits its writes only when
// fn succeeds
func (s *service) execute(ctx context.Context, op operation, fn handler) error {
	now := s.clock.Now()
	traceID := id.GenTraceID()

	log := logger.FromContext(ctx).WithFields(map[string]interface{}{
		"action": op.action.String(),
		"user":   op.userID,
		"symbol": op.symbol,
		"trace":  traceID,
	})
	ctx = logger.WithContext(ctx, log)

	l := ledger.New(traceID, s.marketStore, s.positionStore)
	extra := core.NewTransactionExtra()

	if err := fn(ctx, l, now, extra); err != nil {
		err = normalizeErr(err)
		log.WithError(err).Warnln("operation rejected")
		observe(op.action, err)
		return err
	}

	for _, m := range l.Loaded() {
		if err := pkgcompound.RefreshExchangeRate(m); err != nil {
			err = normalizeErr(err)
			observe(op.action, err)
			return err
		}
	}

	if !op.silent {
		t := &core.Transaction{
			Action:    op.action,
			TraceID:   traceID,
			UserID:    op.userID,
			Symbol:    op.symbol,
			Amount:    op.amount,
			Timestamp: now.Unix(),
		}
		t.SetExtraData(extra)
		l.Record(t)
	}

	if err := l.Commit(ctx, s.ledgerStore); err != nil {
		log.WithError(err).Errorln("commit")
		observe(op.action, err)
		return err
	}

	observe(op.action, nil)
	log.Debugln("operation committed")
	return nil
}

// view runs fn against a throwaway ledger, nothing is committed
func (s *service) view(ctx context.Context, fn func(l *ledger.Ledger, now time.Time) error) error {
	l := ledger.New(id.GenTraceID(), s.marketStore, s.positionStore)
	return normalizeErr(fn(l, s.clock.Now()))
}

// accrued market with interest applied up to now
func (s *service) accrued(ctx context.Context, l core.ILedger, symbol string, now time.Time) (*core.Market, error) {
	market, err := l.Market(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := s.marketService.Accrue(ctx, market, now); err != nil {
		return nil, err
	}

	return market, nil
}

func (s *service) isAdmin(operator string) bool {
	for _, a := range s.cfg.Admins {
		if a == operator {
			return true
		}
	}

	return false
}

func normalizeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fixed.ErrOverflow):
		return core.ErrArithmeticOverflow
	case errors.Is(err, fixed.ErrDivisionByZero), errors.Is(err, fixed.ErrUnderflow):
		return core.ErrInvalidParameter
	}

	return err
}
