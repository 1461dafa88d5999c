package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

// OnWork one round of work
type OnWork func(ctx context.Context) error

// BaseJob runs OnWork on a cron schedule, a tick is skipped while the
// previous round is still running
type BaseJob struct {
	Name    string
	Cron    *cron.Cron
	OnWork  OnWork
	ctx     context.Context
	running int32
}

// Schedule set up the cron, location defaults to local time
func (job *BaseJob) Schedule(name, location, spec string, onWork OnWork) error {
	l, err := time.LoadLocation(location)
	if err != nil {
		return err
	}

	job.Name = name
	job.OnWork = onWork
	job.Cron = cron.New(cron.WithLocation(l))
	_, err = job.Cron.AddFunc(spec, job.tick)
	return err
}

// Run start the cron and block until ctx is done
func (job *BaseJob) Run(ctx context.Context) error {
	job.ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("worker", job.Name))
	job.Cron.Start()

	<-ctx.Done()
	<-job.Cron.Stop().Done()
	return nil
}

func (job *BaseJob) tick() {
	if !atomic.CompareAndSwapInt32(&job.running, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&job.running, 0)

	if err := job.OnWork(job.ctx); err != nil {
		logger.FromContext(job.ctx).WithError(err).Warnln("work failed")
	}
}
