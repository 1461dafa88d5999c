package cmd

import (
	"time"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/store/db"
	_ "github.com/lib/pq" // postgres driver
	"github.com/y4hyya/Stellend/config"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/service/account"
	"github.com/y4hyya/Stellend/service/custody"
	"github.com/y4hyya/Stellend/service/liquidation"
	marketservice "github.com/y4hyya/Stellend/service/market"
	"github.com/y4hyya/Stellend/service/oracle"
	"github.com/y4hyya/Stellend/service/pool"
	ledgerstore "github.com/y4hyya/Stellend/store/ledger"
	"github.com/y4hyya/Stellend/store/market"
	"github.com/y4hyya/Stellend/store/memory"
	"github.com/y4hyya/Stellend/store/position"
	"github.com/y4hyya/Stellend/store/price"
	"github.com/y4hyya/Stellend/store/transaction"
	"github.com/y4hyya/Stellend/store/transfer"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// stores every store behind one backend
type stores struct {
	db           *db.DB
	markets      core.IMarketStore
	positions    core.IPositionStore
	prices       core.IPriceStore
	transfers    core.ITransferStore
	transactions core.ITransactionStore
	ledger       core.ILedgerStore
}

// provideStores database stores, or the in memory backend when no
// database dialect is configured
func provideStores() *stores {
	if cfg.DB.Dialect == "" {
		m := memory.New()
		return &stores{
			markets:      m.Markets(),
			positions:    m.Positions(),
			prices:       m.Prices(),
			transfers:    m.Transfers(),
			transactions: m.Transactions(),
			ledger:       m,
		}
	}

	database := provideDatabase()
	s := &stores{
		db:           database,
		markets:      market.New(database),
		positions:    position.New(database),
		prices:       price.Cache(price.New(database), 5*time.Second),
		transfers:    transfer.New(database),
		transactions: transaction.New(database),
	}

	s.ledger = ledgerstore.New(database, s.markets, s.positions, s.prices, s.transfers, s.transactions)
	return s
}

// ------------------service------------------------------------

func provideCurve() compound.RateCurve {
	mk := compound.DefaultMultiKink()
	if m := cfg.RateModel.MultiKink; m.RateMax > 0 {
		mk = compound.MultiKink{
			RateMin:            fixed.New(m.RateMin),
			RateOpt:            fixed.New(m.RateOpt),
			RateMax:            fixed.New(m.RateMax),
			OptimalUtilization: fixed.New(m.OptimalUtilization),
		}
	}

	ts := compound.DefaultTwoSlope()
	if m := cfg.RateModel.TwoSlope; m.OptimalUtilization > 0 {
		ts = compound.TwoSlope{
			BaseRate:           fixed.New(m.BaseRate),
			Slope1:             fixed.New(m.Slope1),
			Slope2:             fixed.New(m.Slope2),
			OptimalUtilization: fixed.New(m.OptimalUtilization),
		}
	}

	curve, err := compound.NewCurve(cfg.RateModel.Kind, mk, ts)
	if err != nil {
		panic(err)
	}

	return curve
}

func provideMarketParams() []*core.MarketParams {
	params, err := config.MarketParams(cfg.Markets)
	if err != nil {
		panic(err)
	}

	return params
}

func provideCustody() core.ICustody {
	c, err := custody.New(cfg.Custody)
	if err != nil {
		panic(err)
	}

	return c
}

// services wired services
type services struct {
	oracle core.IOracleService
	pool   core.IPoolService
}

func provideServices(s *stores, clk clock.Clock) *services {
	oracleSrv := oracle.New(oracle.Config{
		Admins:         cfg.Admins,
		StaleThreshold: time.Duration(cfg.Oracle.StaleThreshold) * time.Second,
		RejectStale:    cfg.Oracle.ShouldRejectStale(),
	}, clk, s.prices, s.ledger)

	marketSrv := marketservice.New(provideCurve())
	accountSrv := account.New(account.Config{
		ThresholdPolicy:     cfg.Risk.ThresholdPolicy,
		RepresentativeAsset: cfg.Risk.RepresentativeAsset,
	}, marketSrv, oracleSrv)
	liquidationSrv := liquidation.New(liquidation.Config{
		CloseFactor:      fixed.New(cfg.Risk.CloseFactor),
		LiquidationBonus: fixed.New(cfg.Risk.LiquidationBonus),
	}, marketSrv, accountSrv)

	poolSrv := pool.New(
		pool.Config{Admins: cfg.Admins},
		clk,
		s.markets,
		s.positions,
		s.ledger,
		marketSrv,
		accountSrv,
		liquidationSrv,
	)

	return &services{
		oracle: oracleSrv,
		pool:   poolSrv,
	}
}
