package priceoracle

import (
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/worker"
)

var stalePrices = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "stellend",
	Subsystem: "oracle",
	Name:      "price_stale",
	Help:      "1 when the market price is stale or unset.",
}, []string{"symbol"})

// Worker watches market prices and flags the stale ones
type Worker struct {
	worker.BaseJob
	markets core.IMarketStore
	oracle  core.IOracleService
}

// New new price oracle watcher
func New(cfg *core.Config, marketStr core.IMarketStore, oracle core.IOracleService) (*Worker, error) {
	w := &Worker{
		markets: marketStr,
		oracle:  oracle,
	}

	if err := w.Schedule("priceoracle", cfg.App.Location, "@every 1m", w.onWork); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	markets, err := w.markets.All(ctx)
	if err != nil {
		return err
	}

	for _, m := range markets {
		stale, err := w.oracle.IsStale(ctx, m.Symbol)
		if err != nil {
			return err
		}

		if stale {
			log.WithField("symbol", m.Symbol).Warnln("price stale")
			stalePrices.WithLabelValues(m.Symbol).Set(1)
		} else {
			stalePrices.WithLabelValues(m.Symbol).Set(0)
		}
	}

	return nil
}
