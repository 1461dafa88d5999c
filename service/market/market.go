package market

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	pkgcompound "github.com/y4hyya/Stellend/pkg/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

type service struct {
	curve compound.RateCurve
}

// New new market service
func New(curve compound.RateCurve) core.IMarketService {
	return &service{
		curve: curve,
	}
}

func (s *service) Accrue(ctx context.Context, market *core.Market, now time.Time) error {
	accrual, err := pkgcompound.AccrueInterest(s.curve, market, now)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("symbol", market.Symbol).Errorln("accrue interest")
		return err
	}

	if accrual != nil {
		logger.FromContext(ctx).WithFields(map[string]interface{}{
			"symbol":       market.Symbol,
			"rate":         accrual.Rate.String(),
			"interest":     accrual.Interest.String(),
			"reserve":      accrual.Reserve.String(),
			"borrow_index": market.BorrowIndex.String(),
		}).Debugln("interest accrued")
	}

	return nil
}

func (s *service) Utilization(market *core.Market) (fixed.Int, error) {
	return pkgcompound.UtilizationRate(market)
}

func (s *service) ExchangeRate(market *core.Market) (fixed.Int, error) {
	return pkgcompound.ExchangeRate(market)
}

func (s *service) BorrowRate(market *core.Market) (fixed.Int, error) {
	u, err := s.Utilization(market)
	if err != nil {
		return fixed.Zero, err
	}

	return s.curve.Rate(u)
}

func (s *service) SupplyRate(market *core.Market) (fixed.Int, error) {
	u, err := s.Utilization(market)
	if err != nil {
		return fixed.Zero, err
	}

	borrowRate, err := s.curve.Rate(u)
	if err != nil {
		return fixed.Zero, err
	}

	return compound.SupplyRate(borrowRate, u, market.ReserveFactor)
}

func (s *service) Debt(market *core.Market, position *core.Position) (fixed.Int, error) {
	return pkgcompound.BorrowBalance(market, position)
}

func (s *service) Info(ctx context.Context, market *core.Market) (*core.MarketInfo, error) {
	u, err := s.Utilization(market)
	if err != nil {
		return nil, err
	}

	borrowRate, err := s.curve.Rate(u)
	if err != nil {
		return nil, err
	}

	supplyRate, err := compound.SupplyRate(borrowRate, u, market.ReserveFactor)
	if err != nil {
		return nil, err
	}

	perSecond, err := compound.RatePerSecond(borrowRate)
	if err != nil {
		return nil, err
	}

	if err := pkgcompound.RefreshExchangeRate(market); err != nil {
		return nil, err
	}

	return &core.MarketInfo{
		Market:              market,
		Utilization:         u,
		BorrowRate:          borrowRate,
		SupplyRate:          supplyRate,
		BorrowRatePerSecond: perSecond,
		Liquidity:           market.Liquidity(),
	}, nil
}
