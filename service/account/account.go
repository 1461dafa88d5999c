package account

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// DefaultLiquidationThreshold used when the representative market is missing
var DefaultLiquidationThreshold = fixed.New(8_000_000)

// Config valuation config
type Config struct {
	// ThresholdPolicy representative or weighted
	ThresholdPolicy string
	// RepresentativeAsset market whose liquidation threshold stands for all collateral
	RepresentativeAsset string
}

type service struct {
	cfg           Config
	marketService core.IMarketService
	oracle        core.IOracleService
}

// New new account service
func New(cfg Config, marketSrv core.IMarketService, oracle core.IOracleService) core.IAccountService {
	if cfg.ThresholdPolicy == "" {
		cfg.ThresholdPolicy = core.ThresholdPolicyRepresentative
	}

	if cfg.RepresentativeAsset == "" {
		cfg.RepresentativeAsset = "XLM"
	}

	return &service{
		cfg:           cfg,
		marketService: marketSrv,
		oracle:        oracle,
	}
}

func (s *service) Price(ctx context.Context, symbol string) (fixed.Int, error) {
	return s.oracle.SafePrice(ctx, symbol)
}

type totals struct {
	collateral fixed.Int
	weighted   fixed.Int
	threshold  fixed.Int
	debt       fixed.Int
}

func (s *service) Valuation(ctx context.Context, l core.ILedger, userID string, now time.Time) (*core.Valuation, error) {
	log := logger.FromContext(ctx).WithField("service", "account")

	markets, err := l.Markets(ctx)
	if err != nil {
		return nil, err
	}

	var t totals
	for _, market := range markets {
		position, err := l.Position(ctx, userID, market.Symbol)
		if err != nil {
			return nil, err
		}

		if err := s.add(ctx, &t, market, position, now); err != nil {
			log.WithError(err).WithField("symbol", market.Symbol).Warnln("value position")
			return nil, err
		}
	}

	threshold, err := s.liquidationThreshold(markets, &t)
	if err != nil {
		return nil, err
	}

	v := &core.Valuation{
		CollateralUSD:         t.collateral,
		WeightedCollateralUSD: t.weighted,
		DebtUSD:               t.debt,
		AvailableBorrowUSD:    t.weighted.SubFloor(t.debt),
		LiquidationThreshold:  threshold,
		HealthFactor:          core.NoDebtHealthFactor,
	}

	if t.debt.IsPositive() {
		if v.HealthFactor, err = fixed.MulDiv(t.collateral, threshold, t.debt); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (s *service) add(ctx context.Context, t *totals, market *core.Market, position *core.Position, now time.Time) error {
	if market.CollateralEnabled && position.Collateral.IsPositive() {
		price, err := s.Price(ctx, market.Symbol)
		if err != nil {
			return err
		}

		value, err := core.ValueInUSD(position.Collateral, price)
		if err != nil {
			return err
		}

		weighted, err := fixed.MulDiv(value, market.LTV, fixed.Scale)
		if err != nil {
			return err
		}

		atThreshold, err := fixed.MulDiv(value, market.LiquidationThreshold, fixed.Scale)
		if err != nil {
			return err
		}

		if t.collateral, err = t.collateral.Add(value); err != nil {
			return err
		}

		if t.weighted, err = t.weighted.Add(weighted); err != nil {
			return err
		}

		if t.threshold, err = t.threshold.Add(atThreshold); err != nil {
			return err
		}
	}

	if market.BorrowEnabled && position.DebtPrincipal.IsPositive() {
		if err := s.marketService.Accrue(ctx, market, now); err != nil {
			return err
		}

		debt, err := s.marketService.Debt(market, position)
		if err != nil {
			return err
		}

		price, err := s.Price(ctx, market.Symbol)
		if err != nil {
			return err
		}

		value, err := core.ValueInUSD(debt, price)
		if err != nil {
			return err
		}

		if t.debt, err = t.debt.Add(value); err != nil {
			return err
		}
	}

	return nil
}

// liquidationThreshold the single threshold applied to the whole collateral value
func (s *service) liquidationThreshold(markets []*core.Market, t *totals) (fixed.Int, error) {
	if s.cfg.ThresholdPolicy == core.ThresholdPolicyWeighted {
		if t.collateral.IsZero() {
			return fixed.Zero, nil
		}

		return fixed.MulDiv(t.threshold, fixed.Scale, t.collateral)
	}

	for _, m := range markets {
		if m.Symbol == s.cfg.RepresentativeAsset {
			return m.LiquidationThreshold, nil
		}
	}

	return DefaultLiquidationThreshold, nil
}
