package cmd

import (
	"context"
	"strings"

	"github.com/facebookgo/clock"
	"github.com/spf13/cobra"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/views"
	"github.com/y4hyya/Stellend/pkg/fixed"
	"github.com/y4hyya/Stellend/pkg/number"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "run pool operations against the configured store",
}

// poolServices services the pool commands run against
var poolServices = func() *services {
	return provideServices(provideStores(), clock.New())
}

type poolAction func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error)

// userAmountCmd USER SYMBOL AMOUNT command that prints the account afterwards
func userAmountCmd(use, short string, action poolAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " USER SYMBOL AMOUNT",
		Short: short,
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			srv := poolServices()

			amount, err := number.Scaled(args[2])
			if err != nil {
				cmd.PrintErrln(err)
				return
			}

			userID, symbol := args[0], strings.ToUpper(args[1])
			msg, err := action(ctx, srv.pool, userID, symbol, amount)
			if err != nil {
				cmd.PrintErrln(use+":", err)
				return
			}

			if msg != "" {
				cmd.Println(msg)
			}

			account, err := srv.pool.Account(ctx, userID)
			if err != nil {
				cmd.PrintErrln("show account:", err)
				return
			}

			printJSON(cmd, views.AccountView(account))
		},
	}
}

var poolSupplyCmd = userAmountCmd("supply", "supply underlying for shares", func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error) {
	shares, err := pool.Supply(ctx, userID, symbol, amount)
	if err != nil {
		return "", err
	}

	return "minted shares " + number.Human(shares), nil
})

var poolWithdrawCmd = userAmountCmd("withdraw", "burn shares for underlying", func(ctx context.Context, pool core.IPoolService, userID, symbol string, shares fixed.Int) (string, error) {
	amount, err := pool.Withdraw(ctx, userID, symbol, shares)
	if err != nil {
		return "", err
	}

	return "withdrawn " + number.Human(amount), nil
})

var poolDepositCmd = userAmountCmd("deposit", "deposit collateral", func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error) {
	return "", pool.DepositCollateral(ctx, userID, symbol, amount)
})

var poolWithdrawCollateralCmd = userAmountCmd("withdraw-collateral", "withdraw collateral", func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error) {
	return "", pool.WithdrawCollateral(ctx, userID, symbol, amount)
})

var poolBorrowCmd = userAmountCmd("borrow", "borrow against deposited collateral", func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error) {
	return "", pool.Borrow(ctx, userID, symbol, amount)
})

var poolRepayCmd = userAmountCmd("repay", "repay debt, capped at the current debt", func(ctx context.Context, pool core.IPoolService, userID, symbol string, amount fixed.Int) (string, error) {
	actual, err := pool.Repay(ctx, userID, symbol, amount)
	if err != nil {
		return "", err
	}

	return "repaid " + number.Human(actual), nil
})

var poolLiquidateCmd = &cobra.Command{
	Use:   "liquidate LIQUIDATOR BORROWER REPAY_SYMBOL AMOUNT COLLATERAL_SYMBOL",
	Short: "repay part of an unhealthy borrower's debt and seize collateral",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		srv := poolServices()

		amount, err := number.Scaled(args[3])
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		result, err := srv.pool.Liquidate(cmd.Context(), &core.LiquidationRequest{
			Liquidator:       args[0],
			Borrower:         args[1],
			RepaySymbol:      strings.ToUpper(args[2]),
			RepayAmount:      amount,
			CollateralSymbol: strings.ToUpper(args[4]),
		})
		if err != nil {
			cmd.PrintErrln("liquidate:", err)
			return
		}

		printJSON(cmd, views.LiquidationView(result))
	},
}

var poolReserveFactorCmd = &cobra.Command{
	Use:   "reserve-factor SYMBOL RATE",
	Short: "set the reserve factor of a market, e.g. reserve-factor USDC 0.1",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		srv := poolServices()

		rate, err := number.Scaled(args[1])
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		symbol := strings.ToUpper(args[0])
		if err := srv.pool.SetReserveFactor(ctx, operator(cmd), symbol, rate); err != nil {
			cmd.PrintErrln("set reserve factor:", err)
			return
		}

		info, err := srv.pool.MarketInfo(ctx, symbol)
		if err != nil {
			cmd.PrintErrln("market info:", err)
			return
		}

		printJSON(cmd, views.MarketView(info))
	},
}

func init() {
	poolReserveFactorCmd.Flags().String("operator", "", "admin id, default is the first configured admin")

	poolCmd.AddCommand(
		poolSupplyCmd,
		poolWithdrawCmd,
		poolDepositCmd,
		poolWithdrawCollateralCmd,
		poolBorrowCmd,
		poolRepayCmd,
		poolLiquidateCmd,
		poolReserveFactorCmd,
	)
	rootCmd.AddCommand(poolCmd)
}
