package cmd

import (
	"github.com/drone/signal"
	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/worker"
	"github.com/y4hyya/Stellend/worker/interest"
	"github.com/y4hyya/Stellend/worker/liquidity"
	"github.com/y4hyya/Stellend/worker/priceoracle"
	"github.com/y4hyya/Stellend/worker/transfer"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "stellend job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		c := provideConfig()
		s := provideStores()
		srv := provideServices(s, clock.New())

		interestWorker, err := interest.New(c, srv.pool)
		if err != nil {
			log.WithError(err).Fatal("interest worker")
		}

		transferWorker, err := transfer.New(c, s.db, s.transfers, provideCustody())
		if err != nil {
			log.WithError(err).Fatal("transfer worker")
		}

		oracleWorker, err := priceoracle.New(c, s.markets, srv.oracle)
		if err != nil {
			log.WithError(err).Fatal("price oracle worker")
		}

		liquidityWorker, err := liquidity.New(c, s.markets, s.positions, srv.pool)
		if err != nil {
			log.WithError(err).Fatal("liquidity worker")
		}

		workers := []worker.Worker{
			interestWorker,
			transferWorker,
			oracleWorker,
			liquidityWorker,
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("worker stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
