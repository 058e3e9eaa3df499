package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// Swap trades amountIn of tokenIn against a pool for the counterpart asset.
// The direction is resolved from tokenIn; the output follows the
// constant-product formula with truncating division. Swaps that would pay
// zero or drain the output reserve are rejected, and the post-trade product
// is verified to never fall below the pre-trade product before any state is
// written.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn math.Int) (*types.Pool, string, math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, "", math.Int{}, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, "", math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var reserveIn, reserveOut math.Int
	var tokenOut string
	switch tokenIn {
	case pool.TokenA:
		reserveIn, reserveOut, tokenOut = pool.ReserveA, pool.ReserveB, pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut, tokenOut = pool.ReserveB, pool.ReserveA, pool.TokenA
	default:
		return nil, "", math.Int{}, types.ErrInvalidTokenPair.Wrapf(
			"pool %d trades %s/%s, not %s", poolID, pool.TokenA, pool.TokenB, tokenIn)
	}

	if !pool.Seeded() {
		return nil, "", math.Int{}, types.ErrPoolUnseeded.Wrapf("pool %d", poolID)
	}

	amountOut, err := SwapOutput(amountIn, reserveIn, reserveOut, k.GetParams(ctx).SwapFee)
	if err != nil {
		return nil, "", math.Int{}, err
	}

	newReserveIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return nil, "", math.Int{}, err
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return nil, "", math.Int{}, err
	}

	// (rIn + in) * (rOut - out) >= rIn * rOut must hold after truncation.
	oldProduct, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return nil, "", math.Int{}, err
	}
	newProduct, err := SafeMul(newReserveIn, newReserveOut)
	if err != nil {
		return nil, "", math.Int{}, err
	}
	if newProduct.LT(oldProduct) {
		return nil, "", math.Int{}, types.ErrInvalidPoolState.Wrapf(
			"swap would shrink product from %s to %s", oldProduct, newProduct)
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, trader, moduleAddr,
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return nil, "", math.Int{}, types.ErrTransferFailed.Wrapf("swap input into pool %d: %s", poolID, err)
	}
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, trader,
		sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return nil, "", math.Int{}, types.ErrTransferFailed.Wrapf("swap output from pool %d: %s", poolID, err)
	}

	if tokenIn == pool.TokenA {
		pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
	} else {
		pool.ReserveA, pool.ReserveB = newReserveOut, newReserveIn
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, "", math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
		sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
		sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
	))

	k.Logger(ctx).Info("swap executed",
		"pool_id", poolID, "trader", trader.String(),
		"token_in", tokenIn, "amount_in", amountIn.String(),
		"token_out", tokenOut, "amount_out", amountOut.String())
	if k.metrics != nil {
		k.metrics.Swaps.WithLabelValues(tokenIn, tokenOut).Inc()
		if amountIn.IsInt64() {
			k.metrics.SwapVolume.WithLabelValues(tokenIn).Add(float64(amountIn.Int64()))
		}
		k.observePool(pool)
	}
	return &pool, tokenOut, amountOut, nil
}
