package cmd

import (
	"github.com/facebookgo/clock"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/handler/views"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "inspect accounts",
}

var accountShowCmd = &cobra.Command{
	Use:   "show USER",
	Short: "positions, valuation and health factor of a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		srv := provideServices(provideStores(), clock.New())

		account, err := srv.pool.Account(cmd.Context(), args[0])
		if err != nil {
			cmd.PrintErrln("show account:", err)
			return
		}

		printJSON(cmd, views.AccountView(account))
	},
}

var accountTxsCmd = &cobra.Command{
	Use:   "txs USER [OFFSET] [LIMIT]",
	Short: "list the transactions of a user",
	Args:  cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			offset uint64
			limit  = 20
		)

		if len(args) > 1 {
			offset = cast.ToUint64(args[1])
		}

		if len(args) > 2 {
			limit = cast.ToInt(args[2])
		}

		s := provideStores()
		transactions, err := s.transactions.ListByUser(cmd.Context(), args[0], offset, limit)
		if err != nil {
			cmd.PrintErrln("list transactions:", err)
			return
		}

		list := make([]views.Transaction, 0, len(transactions))
		for _, t := range transactions {
			list = append(list, views.TransactionView(t))
		}

		printJSON(cmd, list)
	},
}

func init() {
	accountCmd.AddCommand(accountShowCmd, accountTxsCmd)
	rootCmd.AddCommand(accountCmd)
}
