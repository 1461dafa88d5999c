package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/views"
)

// operator the --operator flag, falling back to the first configured admin
func operator(cmd *cobra.Command) string {
	if op, _ := cmd.Flags().GetString("operator"); op != "" {
		return op
	}

	if len(cfg.Admins) > 0 {
		return cfg.Admins[0]
	}

	return ""
}

func seedMarkets(ctx context.Context, pool core.IPoolService) error {
	markets, err := pool.Markets(ctx)
	if err != nil {
		return err
	}

	if len(markets) > 0 {
		return nil
	}

	if len(cfg.Admins) == 0 {
		return errors.New("no admin configured")
	}

	return pool.Initialize(ctx, cfg.Admins[0], provideMarketParams())
}

func printJSON(cmd *cobra.Command, v interface{}) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		cmd.PrintErrln(err)
	}
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create the configured markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		srv := provideServices(provideStores(), clock.New())

		if err := srv.pool.Initialize(ctx, operator(cmd), provideMarketParams()); err != nil {
			cmd.PrintErrln("init markets:", err)
			return
		}

		cmd.Println("markets created")
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "inspect markets",
}

var marketListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "list markets",
	Run: func(cmd *cobra.Command, args []string) {
		srv := provideServices(provideStores(), clock.New())

		infos, err := srv.pool.Markets(cmd.Context())
		if err != nil {
			cmd.PrintErrln("list markets:", err)
			return
		}

		list := make([]views.Market, 0, len(infos))
		for _, info := range infos {
			list = append(list, views.MarketView(info))
		}

		printJSON(cmd, list)
	},
}

var marketInfoCmd = &cobra.Command{
	Use:   "info SYMBOL",
	Short: "show one market with interest accrued up to now",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srv := provideServices(provideStores(), clock.New())

		info, err := srv.pool.MarketInfo(cmd.Context(), strings.ToUpper(args[0]))
		if err != nil {
			cmd.PrintErrln("market info:", err)
			return
		}

		printJSON(cmd, views.MarketView(info))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("operator", "", "admin id, default is the first configured admin")

	marketCmd.AddCommand(marketListCmd, marketInfoCmd)
	rootCmd.AddCommand(marketCmd)
}
