package interest

import (
	"context"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/worker"
)

// DefaultSpec accrue every minute
const DefaultSpec = "@every 1m"

// Worker keeps every market's borrow index current even without traffic
type Worker struct {
	worker.BaseJob
	pool core.IPoolService
}

// New new interest worker
func New(cfg *core.Config, pool core.IPoolService) (*Worker, error) {
	w := &Worker{pool: pool}

	spec := cfg.App.AccrueSpec
	if spec == "" {
		spec = DefaultSpec
	}

	if err := w.Schedule("interest", cfg.App.Location, spec, w.onWork); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) onWork(ctx context.Context) error {
	return w.pool.AccrueAll(ctx)
}
