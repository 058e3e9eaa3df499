package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/basin-labs/basinswap/testutil/mocks"
	"github.com/basin-labs/basinswap/x/amm/keeper"
	"github.com/basin-labs/basinswap/x/amm/types"
)

func TestAddLiquiditySeed(t *testing.T) {
	k, bank, ctx, poolID, provider := setupPool(t)

	pool, shares, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(100), sdkmath.NewInt(100))
	require.NoError(t, err)

	// The seeding deposit mints exactly amountA shares.
	require.Equal(t, int64(100), shares.Int64())
	require.Equal(t, int64(100), pool.ReserveA.Int64())
	require.Equal(t, int64(100), pool.ReserveB.Int64())
	require.Equal(t, int64(100), pool.TotalShares.Int64())
	require.True(t, pool.Seeded())

	require.Equal(t, int64(100), k.GetShares(ctx, poolID, provider).Int64())

	// The module account now holds the reserves.
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, int64(100), bank.GetBalance(ctx, moduleAddr, denomA).Amount.Int64())
	require.Equal(t, int64(100), bank.GetBalance(ctx, moduleAddr, denomB).Amount.Int64())
}

func TestAddLiquiditySeedAnyRatio(t *testing.T) {
	k, _, ctx, poolID, provider := setupPool(t)

	// The first deposit fixes the price ratio; any positive amounts work.
	pool, shares, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(500), sdkmath.NewInt(20_000))
	require.NoError(t, err)
	require.Equal(t, int64(500), shares.Int64())
	require.Equal(t, int64(500), pool.ReserveA.Int64())
	require.Equal(t, int64(20_000), pool.ReserveB.Int64())
}

func TestAddLiquidityExactRatio(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	// Skew the pool off the seed ratio first: 100/100 + 10 in -> 110/91.
	_, _, _, err := k.Swap(ctx, trader, poolID, denomA, sdkmath.NewInt(10))
	require.NoError(t, err)

	// 11 * 91 / 110 = 9, so amountB = 10 misses the ratio.
	_, _, err = k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(11), sdkmath.NewInt(10))
	require.ErrorIs(t, err, types.ErrRatioMismatch)

	// The failed deposit changed nothing.
	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	require.Equal(t, int64(110), pool.ReserveA.Int64())
	require.Equal(t, int64(91), pool.ReserveB.Int64())
	require.Equal(t, int64(100), pool.TotalShares.Int64())

	// The exact amount passes and mints 11 * 100 / 110 = 10 shares.
	pool2, shares, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(11), sdkmath.NewInt(9))
	require.NoError(t, err)
	require.Equal(t, int64(10), shares.Int64())
	require.Equal(t, int64(121), pool2.ReserveA.Int64())
	require.Equal(t, int64(100), pool2.ReserveB.Int64())
	require.Equal(t, int64(110), pool2.TotalShares.Int64())
	require.Equal(t, int64(110), k.GetShares(ctx, poolID, provider).Int64())
}

func TestAddLiquidityDustMintsNoShares(t *testing.T) {
	k, bank, ctx, poolID, provider := setupPool(t)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	_, _, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(10), sdkmath.NewInt(1000))
	require.NoError(t, err)

	// Pump reserveA above totalShares: 10/1000 + 10 in -> 20/500.
	_, _, _, err = k.Swap(ctx, trader, poolID, denomA, sdkmath.NewInt(10))
	require.NoError(t, err)

	// 1 * 10 / 20 = 0 shares; the deposit would be donated, so it is refused.
	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	requiredB, err := keeper.RequiredDepositB(sdkmath.NewInt(1), pool.ReserveA, pool.ReserveB)
	require.NoError(t, err)
	_, _, err = k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(1), requiredB)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestAddLiquidityTransferFailure(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)

	bank.FailTransfers = true
	_, _, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(50), sdkmath.NewInt(50))
	require.ErrorIs(t, err, types.ErrTransferFailed)

	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	require.Equal(t, int64(100), pool.ReserveA.Int64())
	require.Equal(t, int64(100), pool.ReserveB.Int64())
	require.Equal(t, int64(100), pool.TotalShares.Int64())
	require.Equal(t, int64(100), k.GetShares(ctx, poolID, provider).Int64())
}

func TestAddLiquidityInvalidInputs(t *testing.T) {
	k, _, ctx, poolID, provider := setupSeededPool(t)

	_, _, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(0), sdkmath.NewInt(10))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, _, err = k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(10), sdkmath.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, _, err = k.AddLiquidity(ctx, provider, 99, sdkmath.NewInt(10), sdkmath.NewInt(10))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestRemoveLiquidityPartial(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	// Skew reserves to 110/91 so the payout exercises truncation.
	_, _, _, err := k.Swap(ctx, trader, poolID, denomA, sdkmath.NewInt(10))
	require.NoError(t, err)

	before := bank.GetBalance(ctx, provider, denomA).Amount

	// 30 * 110 / 100 = 33, 30 * 91 / 100 = 27.
	pool, amountA, amountB, err := k.RemoveLiquidity(ctx, provider, poolID, sdkmath.NewInt(30))
	require.NoError(t, err)
	require.Equal(t, int64(33), amountA.Int64())
	require.Equal(t, int64(27), amountB.Int64())
	require.Equal(t, int64(77), pool.ReserveA.Int64())
	require.Equal(t, int64(64), pool.ReserveB.Int64())
	require.Equal(t, int64(70), pool.TotalShares.Int64())
	require.Equal(t, int64(70), k.GetShares(ctx, poolID, provider).Int64())

	after := bank.GetBalance(ctx, provider, denomA).Amount
	require.Equal(t, int64(33), after.Sub(before).Int64())
}

func TestRemoveLiquidityInsufficientShares(t *testing.T) {
	k, _, ctx, poolID, provider := setupSeededPool(t)

	_, _, _, err := k.RemoveLiquidity(ctx, provider, poolID, sdkmath.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	stranger := testAddr("stranger")
	_, _, _, err = k.RemoveLiquidity(ctx, stranger, poolID, sdkmath.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	require.Equal(t, int64(100), pool.TotalShares.Int64())
}

func TestRemoveLiquidityFullDrainAndReseed(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)

	pool, amountA, amountB, err := k.RemoveLiquidity(ctx, provider, poolID, sdkmath.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, int64(100), amountA.Int64())
	require.Equal(t, int64(100), amountB.Int64())

	// Burning all shares returns the pool to the unseeded state.
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())
	require.False(t, pool.Seeded())
	require.True(t, k.GetShares(ctx, poolID, provider).IsZero())

	moduleAddr := k.GetModuleAddress()
	require.True(t, bank.GetBalance(ctx, moduleAddr, denomA).Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, moduleAddr, denomB).Amount.IsZero())

	// The pair stays registered and can be reseeded at a fresh ratio.
	pool2, shares, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(200), sdkmath.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, int64(200), shares.Int64())
	require.Equal(t, int64(200), pool2.ReserveA.Int64())
	require.Equal(t, int64(50), pool2.ReserveB.Int64())
}

func TestRemoveLiquidityZeroPayout(t *testing.T) {
	k, bank, ctx, poolID, provider := setupPool(t)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	_, _, err := k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(1000), sdkmath.NewInt(5))
	require.NoError(t, err)

	// Shrink both reserves below totalShares: 1000/5 + 5 B in -> 500/10.
	_, _, _, err = k.Swap(ctx, trader, poolID, denomB, sdkmath.NewInt(5))
	require.NoError(t, err)

	// 1 * 500 / 1000 = 0 and 1 * 10 / 1000 = 0: the burn pays nothing.
	_, _, _, err = k.RemoveLiquidity(ctx, provider, poolID, sdkmath.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	require.Equal(t, int64(1000), k.GetShares(ctx, poolID, provider).Int64())
}

func TestRemoveLiquidityTransferFailure(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)

	bank.FailTransfers = true
	_, _, _, err := k.RemoveLiquidity(ctx, provider, poolID, sdkmath.NewInt(50))
	require.ErrorIs(t, err, types.ErrTransferFailed)

	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)
	require.Equal(t, int64(100), pool.TotalShares.Int64())
	require.Equal(t, int64(100), k.GetShares(ctx, poolID, provider).Int64())
}

func TestMultipleProviders(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)

	second := testAddr("second")
	bank.Fund(second, sdk.NewCoins(
		sdk.NewCoin(denomA, sdkmath.NewInt(1_000_000)),
		sdk.NewCoin(denomB, sdkmath.NewInt(1_000_000)),
	))

	// 50 * 100 / 100 = 50 shares for the second provider.
	pool, shares, err := k.AddLiquidity(ctx, second, poolID, sdkmath.NewInt(50), sdkmath.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, int64(50), shares.Int64())
	require.Equal(t, int64(150), pool.TotalShares.Int64())

	require.Equal(t, int64(100), k.GetShares(ctx, poolID, provider).Int64())
	require.Equal(t, int64(50), k.GetShares(ctx, poolID, second).Int64())
	require.Equal(t, int64(150), k.TotalSharesHeld(ctx, poolID).Int64())
}

// fundTrader credits a trader with plenty of both pool assets.
func fundTrader(t *testing.T, bank *mocks.BankKeeper, trader sdk.AccAddress) {
	t.Helper()
	bank.Fund(trader, sdk.NewCoins(
		sdk.NewCoin(denomA, sdkmath.NewInt(1_000_000_000)),
		sdk.NewCoin(denomB, sdkmath.NewInt(1_000_000_000)),
	))
}
