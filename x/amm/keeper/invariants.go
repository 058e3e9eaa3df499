package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// RegisterInvariants registers the AMM module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-conservation", ShareConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs every module invariant.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := ShareConservationInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := PoolStateInvariant(k)(ctx); broken {
			return msg, broken
		}
		return ModuleBalanceInvariant(k)(ctx)
	}
}

// ShareConservationInvariant checks that the per-holder share balances of
// every pool sum exactly to the pool's recorded total.
func ShareConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		k.IteratePools(ctx, func(pool types.Pool) bool {
			held := k.TotalSharesHeld(ctx, pool.Id)
			if !held.Equal(pool.TotalShares) {
				broken = true
				msg += fmt.Sprintf("pool %d: holders own %s shares, total is %s\n",
					pool.Id, held, pool.TotalShares)
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "share-conservation", msg), broken
	}
}

// PoolStateInvariant checks that every pool is internally consistent: either
// fully unseeded or holding positive reserves on both sides.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("pool %d: %s\n", pool.Id, err)
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "pool-state", msg), broken
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the
// reserves recorded for every pool.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		moduleAddr := k.GetModuleAddress()
		required := sdk.NewCoins()
		k.IteratePools(ctx, func(pool types.Pool) bool {
			required = required.Add(
				sdk.NewCoin(pool.TokenA, pool.ReserveA),
				sdk.NewCoin(pool.TokenB, pool.ReserveB),
			)
			return false
		})

		var msg string
		broken := false
		for _, coin := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, coin.Denom)
			if balance.Amount.LT(coin.Amount) {
				broken = true
				msg += fmt.Sprintf("module holds %s, reserves require %s\n", balance, coin)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", msg), broken
	}
}
