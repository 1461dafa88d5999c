package liquidation

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

var (
	// DefaultCloseFactor at most half of the debt per call
	DefaultCloseFactor = fixed.New(5_000_000)
	// DefaultLiquidationBonus 5% extra collateral for the liquidator
	DefaultLiquidationBonus = fixed.New(500_000)
)

// Config liquidation config, scaled by fixed.Scale
type Config struct {
	CloseFactor      fixed.Int
	LiquidationBonus fixed.Int
}

type service struct {
	cfg            Config
	marketService  core.IMarketService
	accountService core.IAccountService
}

// New new liquidation service
func New(cfg Config, marketSrv core.IMarketService, accountSrv core.IAccountService) core.ILiquidationService {
	if cfg.CloseFactor.IsZero() {
		cfg.CloseFactor = DefaultCloseFactor
	}

	if cfg.LiquidationBonus.IsZero() {
		cfg.LiquidationBonus = DefaultLiquidationBonus
	}

	return &service{
		cfg:            cfg,
		marketService:  marketSrv,
		accountService: accountSrv,
	}
}

// Liquidate repays part of an unhealthy borrower's debt in exchange for
// collateral worth the repaid value plus the bonus
func (s *service) Liquidate(ctx context.Context, l core.ILedger, req *core.LiquidationRequest, now time.Time) (*core.LiquidationResult, error) {
	log := logger.FromContext(ctx).WithField("event", "liquidation")

	repayMarket, err := l.Market(ctx, req.RepaySymbol)
	if err != nil {
		return nil, err
	}

	collateralMarket, err := l.Market(ctx, req.CollateralSymbol)
	if err != nil {
		return nil, err
	}

	for _, m := range []*core.Market{repayMarket, collateralMarket} {
		if err := s.marketService.Accrue(ctx, m, now); err != nil {
			return nil, err
		}
	}

	valuation, err := s.accountService.Valuation(ctx, l, req.Borrower, now)
	if err != nil {
		return nil, err
	}

	if valuation.Healthy() {
		return nil, core.ErrPositionHealthy
	}

	debtPosition, err := l.Position(ctx, req.Borrower, req.RepaySymbol)
	if err != nil {
		return nil, err
	}

	debt, err := s.marketService.Debt(repayMarket, debtPosition)
	if err != nil {
		return nil, err
	}

	if debt.IsZero() {
		return nil, core.ErrNoDebt
	}

	if req.RepayAmount.IsZero() {
		return nil, core.ErrInvalidParameter
	}

	maxRepay, err := fixed.MulDiv(debt, s.cfg.CloseFactor, fixed.Scale)
	if err != nil {
		return nil, err
	}

	actualRepay := fixed.Min(req.RepayAmount, maxRepay)
	if actualRepay.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	repayPrice, err := s.accountService.Price(ctx, req.RepaySymbol)
	if err != nil {
		return nil, err
	}

	collateralPrice, err := s.accountService.Price(ctx, req.CollateralSymbol)
	if err != nil {
		return nil, err
	}

	repayValue, err := core.ValueInUSD(actualRepay, repayPrice)
	if err != nil {
		return nil, err
	}

	bonusValue, err := fixed.MulDiv(repayValue, s.cfg.LiquidationBonus, fixed.Scale)
	if err != nil {
		return nil, err
	}

	seizeValue, err := repayValue.Add(bonusValue)
	if err != nil {
		return nil, err
	}

	seized, err := core.AmountFromUSD(seizeValue, collateralPrice)
	if err != nil {
		return nil, err
	}

	collateralPosition, err := l.Position(ctx, req.Borrower, req.CollateralSymbol)
	if err != nil {
		return nil, err
	}

	if collateralPosition.Collateral.LessThan(seized) {
		return nil, core.ErrInsufficientCollateral
	}

	// the principal shrinks by the repaid share of the interest inclusive debt
	newPrincipal := fixed.Zero
	if actualRepay.LessThan(debt) {
		reduction, err := fixed.MulDiv(debtPosition.DebtPrincipal, actualRepay, debt)
		if err != nil {
			return nil, err
		}

		newPrincipal = debtPosition.DebtPrincipal.SubFloor(reduction)
	}

	debtPosition.DebtPrincipal = newPrincipal
	repayMarket.TotalBorrow = repayMarket.TotalBorrow.SubFloor(actualRepay)
	collateralPosition.Collateral = collateralPosition.Collateral.SubFloor(seized)

	l.Transfer(req.RepaySymbol, req.Liquidator, core.PoolAccount, actualRepay, "liquidation repay")
	l.Transfer(req.CollateralSymbol, core.PoolAccount, req.Liquidator, seized, "liquidation seize")

	after, err := s.accountService.Valuation(ctx, l, req.Borrower, now)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"borrower":      req.Borrower,
		"liquidator":    req.Liquidator,
		"repay":         actualRepay.String(),
		"seized":        seized.String(),
		"health_before": valuation.HealthFactor.String(),
		"health_after":  after.HealthFactor.String(),
	}).Infoln("position liquidated")

	return &core.LiquidationResult{
		ActualRepay:      actualRepay,
		RepayValueUSD:    repayValue,
		BonusValueUSD:    bonusValue,
		CollateralSeized: seized,
		HealthFactor:     after.HealthFactor,
	}, nil
}
