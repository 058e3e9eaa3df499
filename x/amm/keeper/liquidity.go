package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// AddLiquidity deposits both assets into a pool and mints ownership shares.
//
// The first deposit seeds the pool: any positive amounts are accepted, the
// deposited amounts become the reserves, and the provider is minted exactly
// amountA shares. Every later deposit must match the current reserve ratio
// exactly under truncating division:
//
//	amountB == amountA * reserveB / reserveA
//
// and mints shares = amountA * totalShares / reserveA. All checks run before
// the asset transfer and the store writes, so a failed deposit mutates
// nothing.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (*types.Pool, math.Int, error) {
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return nil, math.Int{}, types.ErrInvalidAmount.Wrap("deposit amounts must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var minted math.Int
	if !pool.Seeded() {
		minted = amountA
	} else {
		requiredB, err := RequiredDepositB(amountA, pool.ReserveA, pool.ReserveB)
		if err != nil {
			return nil, math.Int{}, err
		}
		if !amountB.Equal(requiredB) {
			return nil, math.Int{}, types.ErrRatioMismatch.Wrapf(
				"deposit of %s %s requires %s %s, got %s", amountA, pool.TokenA, requiredB, pool.TokenB, amountB)
		}
		minted, err = SharesForDeposit(amountA, pool.ReserveA, pool.TotalShares)
		if err != nil {
			return nil, math.Int{}, err
		}
		if minted.IsZero() {
			return nil, math.Int{}, types.ErrInvalidAmount.Wrapf(
				"deposit of %s %s too small to mint shares", amountA, pool.TokenA)
		}
	}

	newReserveA, err := SafeAdd(pool.ReserveA, amountA)
	if err != nil {
		return nil, math.Int{}, err
	}
	newReserveB, err := SafeAdd(pool.ReserveB, amountB)
	if err != nil {
		return nil, math.Int{}, err
	}
	newTotalShares, err := SafeAdd(pool.TotalShares, minted)
	if err != nil {
		return nil, math.Int{}, err
	}

	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.TokenA, amountA),
		sdk.NewCoin(pool.TokenB, amountB),
	)
	if err := k.bankKeeper.SendCoins(ctx, provider, k.GetModuleAddress(), deposit); err != nil {
		return nil, math.Int{}, types.ErrTransferFailed.Wrapf("deposit into pool %d: %s", poolID, err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, math.Int{}, err
	}
	k.SetShares(ctx, poolID, provider, k.GetShares(ctx, poolID, provider).Add(minted))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddLiquidity,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyShares, minted.String()),
		sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
		sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
	))

	k.Logger(ctx).Info("liquidity added",
		"pool_id", poolID, "provider", provider.String(),
		"amount_a", amountA.String(), "amount_b", amountB.String(), "shares", minted.String())
	if k.metrics != nil {
		k.metrics.LiquidityAdds.Inc()
		k.observePool(pool)
	}
	return &pool, minted, nil
}

// RemoveLiquidity burns shareAmount of the provider's shares and pays out
// the proportional slice of both reserves:
//
//	amountA = shareAmount * reserveA / totalShares
//	amountB = shareAmount * reserveB / totalShares
//
// Burning every outstanding share drains the pool completely and returns it
// to the unseeded state; the pair stays registered and can be reseeded at a
// fresh ratio.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shareAmount math.Int) (*types.Pool, math.Int, math.Int, error) {
	if shareAmount.IsNil() || !shareAmount.IsPositive() {
		return nil, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("share amount must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	held := k.GetShares(ctx, poolID, provider)
	if held.LT(shareAmount) {
		return nil, math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf(
			"holder has %s shares in pool %d, requested %s", held, poolID, shareAmount)
	}

	amountA, amountB, err := WithdrawAmounts(shareAmount, pool.ReserveA, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return nil, math.Int{}, math.Int{}, err
	}
	if amountA.IsZero() && amountB.IsZero() {
		return nil, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrapf(
			"burning %s shares pays out nothing", shareAmount)
	}

	newReserveA, err := SafeSub(pool.ReserveA, amountA)
	if err != nil {
		return nil, math.Int{}, math.Int{}, err
	}
	newReserveB, err := SafeSub(pool.ReserveB, amountB)
	if err != nil {
		return nil, math.Int{}, math.Int{}, err
	}
	newTotalShares, err := SafeSub(pool.TotalShares, shareAmount)
	if err != nil {
		return nil, math.Int{}, math.Int{}, err
	}

	payout := sdk.NewCoins(
		sdk.NewCoin(pool.TokenA, amountA),
		sdk.NewCoin(pool.TokenB, amountB),
	)
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), provider, payout); err != nil {
		return nil, math.Int{}, math.Int{}, types.ErrTransferFailed.Wrapf("withdrawal from pool %d: %s", poolID, err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, math.Int{}, math.Int{}, err
	}
	k.SetShares(ctx, poolID, provider, held.Sub(shareAmount))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveLiquidity,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyShares, shareAmount.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
		sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
	))

	k.Logger(ctx).Info("liquidity removed",
		"pool_id", poolID, "provider", provider.String(),
		"shares", shareAmount.String(), "amount_a", amountA.String(), "amount_b", amountB.String())
	if k.metrics != nil {
		k.metrics.LiquidityRemovals.Inc()
		k.observePool(pool)
	}
	return &pool, amountA, amountB, nil
}
