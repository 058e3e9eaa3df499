package cli

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryShares(),
		GetCmdSimulateSwap(),
		GetCmdSimulateDeposit(),
		GetCmdSimulateWithdraw(),
	)

	return ammQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by ID or token pair
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id | token-a token-b]",
		Short: "Query a pool by ID or by token pair",
		Long: `Query a pool's reserves, total shares, and constant product.

Example:
  $ basind query amm pool 1
  $ basind query amm pool ubasin uusdt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := &types.QueryPoolRequest{}
			if len(args) == 1 {
				poolID, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid pool ID: %w", err)
				}
				req.PoolId = poolID
			} else {
				req.TokenA = args[0]
				req.TokenB = args[1]
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to list all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all registered pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(context.Background(), &types.QueryPoolsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryShares returns the command to query a holder's share balance
func GetCmdQueryShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shares [pool-id] [address]",
		Short: "Query a holder's share balance in a pool",
		Long: `Query a holder's ownership shares in a pool along with the pool total.

Example:
  $ basind query amm shares 1 basin1...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Shares(context.Background(), &types.QuerySharesRequest{
				PoolId:  poolID,
				Address: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdSimulateSwap returns the command to pre-compute a swap output
func GetCmdSimulateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-swap [pool-id] [token-in] [amount-in]",
		Short: "Compute the output of a swap without executing it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateSwap(context.Background(), &types.QuerySimulateSwapRequest{
				PoolId:   poolID,
				TokenIn:  args[1],
				AmountIn: amountIn,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdSimulateDeposit returns the command to pre-compute a deposit
func GetCmdSimulateDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-deposit [pool-id] [amount]",
		Short: "Compute the exact deposit pair and minted shares from one given side",
		Long: `Compute the exact deposit pair the ratio check accepts and the shares it
would mint. The amount is asset A by default; pass --token-b to give the
asset B side and derive asset A instead.

Example:
  $ basind query amm simulate-deposit 1 11
  $ basind query amm simulate-deposit 1 9 --token-b`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			givenB, err := cmd.Flags().GetBool(flagTokenB)
			if err != nil {
				return err
			}

			req := &types.QuerySimulateDepositRequest{PoolId: poolID}
			if givenB {
				req.AmountB = amount
			} else {
				req.AmountA = amount
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateDeposit(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	cmd.Flags().Bool(flagTokenB, false, "interpret the amount as asset B and derive asset A")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdSimulateWithdraw returns the command to pre-compute a withdrawal
func GetCmdSimulateWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-withdraw [pool-id] [shares]",
		Short: "Compute the amounts paid out for burning shares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SimulateWithdraw(context.Background(), &types.QuerySimulateWithdrawRequest{
				PoolId: poolID,
				Shares: shares,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
