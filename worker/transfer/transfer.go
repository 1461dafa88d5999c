package transfer

import (
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/worker"
)

const batch = 100

// Worker hands committed transfers to custody, oldest first. A transfer is
// deleted only after custody accepted it; custody dedupes by trace id.
type Worker struct {
	worker.BaseJob
	db        *db.DB
	transfers core.ITransferStore
	custody   core.ICustody
}

// New new transfer worker
func New(cfg *core.Config, db *db.DB, transferStr core.ITransferStore, custody core.ICustody) (*Worker, error) {
	w := &Worker{
		db:        db,
		transfers: transferStr,
		custody:   custody,
	}

	if err := w.Schedule("transfer", cfg.App.Location, "@every 1s", w.onWork); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) onWork(ctx context.Context) error {
	pending, err := w.transfers.Top(ctx, batch)
	if err != nil {
		return err
	}

	for _, t := range pending {
		if err := w.handle(ctx, t); err != nil {
			// keep the order, retry from here next round
			return err
		}
	}

	return nil
}

func (w *Worker) handle(ctx context.Context, t *core.Transfer) error {
	log := logger.FromContext(ctx).WithField("trace", t.TraceID)

	if err := w.custody.Transfer(ctx, t); err != nil {
		log.WithError(err).Errorln("custody transfer")
		return err
	}

	if err := w.transfers.Delete(ctx, w.db, t.ID); err != nil {
		log.WithError(err).Errorln("delete transfer")
		return err
	}

	log.WithField("symbol", t.Symbol).Debugln("transfer done")
	return nil
}
