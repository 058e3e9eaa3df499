package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

// CmdCreatePool returns a CLI command handler for registering a pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [token-b]",
		Short: "Register an empty pool for a token pair",
		Long: `Register a pool for a token pair. The pool holds no liquidity until the
first deposit seeds it.

Example:
  $ basind tx amm create-pool ubasin uusdt --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[1]
			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			msg := &types.MsgCreatePool{
				Creator: clientCtx.GetFromAddress().String(),
				TokenA:  tokenA,
				TokenB:  tokenB,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Deposit both assets into a pool and mint shares",
		Long: `Deposit both assets into a pool. The first deposit seeds the pool at any
ratio; later deposits must match the current reserve ratio exactly. Use the
simulate-deposit query to compute the required counterpart amount.

Example:
  $ basind tx amm add-liquidity 1 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}
			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgAddLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				AmountA:  amountA,
				AmountB:  amountB,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for burning shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares]",
		Short: "Burn shares and withdraw the proportional reserves",
		Long: `Burn ownership shares and receive the proportional slice of both
reserves. Burning all outstanding shares drains the pool completely.

Example:
  $ basind tx amm remove-liquidity 1 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
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

			msg := &types.MsgRemoveLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				Shares:   shares,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [token-in] [amount-in]",
		Short: "Swap an exact input amount against a pool",
		Long: `Swap an exact amount of one pool asset for the other. The output follows
the constant-product formula with truncating division.

Example:
  $ basind tx amm swap 1 ubasin 1000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
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

			msg := &types.MsgSwap{
				Trader:   clientCtx.GetFromAddress().String(),
				PoolId:   poolID,
				TokenIn:  args[1],
				AmountIn: amountIn,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
