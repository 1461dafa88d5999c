package cmd

import (
	"strings"

	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/handler/views"
	"github.com/y4hyya/Stellend/pkg/number"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "manage oracle prices",
}

var priceSetCmd = &cobra.Command{
	Use:   "set SYMBOL PRICE",
	Short: "publish a usd price, e.g. set XLM 0.3",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		srv := provideServices(provideStores(), clock.New())

		price, err := number.Scaled(args[1])
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		if err := srv.oracle.SetPrice(cmd.Context(), operator(cmd), strings.ToUpper(args[0]), price); err != nil {
			cmd.PrintErrln("set price:", err)
			return
		}

		cmd.Println("price set")
	},
}

var priceCrashCmd = &cobra.Command{
	Use:   "crash SYMBOL",
	Short: "halve the price, for liquidation drills",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srv := provideServices(provideStores(), clock.New())

		price, err := srv.oracle.CrashPrice(cmd.Context(), operator(cmd), strings.ToUpper(args[0]))
		if err != nil {
			cmd.PrintErrln("crash price:", err)
			return
		}

		cmd.Println("new price", number.Human(price))
	},
}

var priceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "list prices",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		srv := provideServices(provideStores(), clock.New())

		prices, err := srv.oracle.Prices(ctx)
		if err != nil {
			cmd.PrintErrln("list prices:", err)
			return
		}

		list := make([]views.Price, 0, len(prices))
		for _, p := range prices {
			stale, err := srv.oracle.IsStale(ctx, p.Symbol)
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			list = append(list, views.PriceView(p, stale))
		}

		printJSON(cmd, list)
	},
}

func init() {
	for _, c := range []*cobra.Command{priceSetCmd, priceCrashCmd} {
		c.Flags().String("operator", "", "admin id, default is the first configured admin")
	}

	priceCmd.AddCommand(priceSetCmd, priceCrashCmd, priceListCmd)
	rootCmd.AddCommand(priceCmd)
}
