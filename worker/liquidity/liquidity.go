package liquidity

import (
	"context"
	"sort"
	"sync"

	"github.com/fox-one/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/concurrency"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/number"
	"github.com/y4hyya/Stellend/worker"
)

var unhealthyAccounts = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "stellend",
	Subsystem: "risk",
	Name:      "unhealthy_accounts",
	Help:      "Borrowers whose health factor is below 1.",
})

// Worker scans borrowers and reports the liquidatable ones
type Worker struct {
	worker.BaseJob
	markets   core.IMarketStore
	positions core.IPositionStore
	pool      core.IPoolService
	limit     int
}

// New new liquidity monitor
func New(cfg *core.Config, marketStr core.IMarketStore, positionStr core.IPositionStore, pool core.IPoolService) (*Worker, error) {
	w := &Worker{
		markets:   marketStr,
		positions: positionStr,
		pool:      pool,
		limit:     concurrency.DefaultMax,
	}

	if err := w.Schedule("liquidity", cfg.App.Location, "@every 30s", w.onWork); err != nil {
		return nil, err
	}

	return w, nil
}

// borrowers every user with outstanding principal
func (w *Worker) borrowers(ctx context.Context) ([]string, error) {
	markets, err := w.markets.All(ctx)
	if err != nil {
		return nil, err
	}

	set := map[string]bool{}
	for _, m := range markets {
		if !m.BorrowEnabled {
			continue
		}

		entries, err := w.positions.FindBySymbol(ctx, m.Symbol, core.PositionKindDebtPrincipal)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.Amount.IsPositive() {
				set[e.UserID] = true
			}
		}
	}

	users := make([]string, 0, len(set))
	for u := range set {
		users = append(users, u)
	}
	sort.Strings(users)

	return users, nil
}

func (w *Worker) onWork(ctx context.Context) error {
	unhealthy, err := w.scan(ctx)
	if err != nil {
		return err
	}

	unhealthyAccounts.Set(float64(len(unhealthy)))
	return nil
}

// scan borrowers with a health factor below 1
func (w *Worker) scan(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	users, err := w.borrowers(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		unhealthy []string
		limit     = concurrency.NewGoLimit(w.limit)
	)

	for _, user := range users {
		wg.Add(1)
		limit.Add()

		go func(user string) {
			defer wg.Done()
			defer limit.Done()

			hf, err := w.pool.HealthFactor(ctx, user)
			if err != nil {
				log.WithError(err).WithField("user", user).Warnln("health factor")
				return
			}

			if hf.LessThan(fixed.Scale) {
				log.WithField("user", user).WithField("health_factor", number.Human(hf)).Infoln("liquidatable")

				mu.Lock()
				unhealthy = append(unhealthy, user)
				mu.Unlock()
			}
		}(user)
	}

	wg.Wait()
	sort.Strings(unhealthy)
	return unhealthy, nil
}
