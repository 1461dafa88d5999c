package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drone/signal"
	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/handler"
	"github.com/y4hyya/Stellend/handler/hc"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run stellend api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		s := provideStores()
		srv := provideServices(s, clock.New())

		if seed, _ := cmd.Flags().GetBool("seed"); seed {
			if err := seedMarkets(ctx, srv.pool); err != nil {
				logrus.WithError(err).Fatal("seed markets")
			}
		}

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version))
		}

		{
			//restful api
			svr := handler.New(srv.pool, srv.oracle, s.transactions)
			mux.Mount("/api", svr.HandleRestAPI())
		}

		{
			//metrics
			mux.Handle("/metrics", promhttp.Handler())
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
	serverCmd.Flags().Bool("seed", false, "create the configured markets on start if none exist")
}
