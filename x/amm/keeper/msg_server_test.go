package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/basin-labs/basinswap/x/amm/keeper"
	"github.com/basin-labs/basinswap/x/amm/types"
)

func TestMsgServerFullFlow(t *testing.T) {
	k, bank, ctx, _, provider := setupPool(t)
	srv := keeper.NewMsgServerImpl(k)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	createRes, err := srv.CreatePool(ctx, types.NewMsgCreatePool(provider.String(), denomA, "uatom"))
	require.NoError(t, err)
	require.Equal(t, uint64(2), createRes.PoolId)

	addRes, err := srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), 1, sdkmath.NewInt(100), sdkmath.NewInt(100)))
	require.NoError(t, err)
	require.Equal(t, int64(100), addRes.Shares.Int64())
	require.Equal(t, int64(100), addRes.ReserveA.Int64())
	require.Equal(t, int64(100), addRes.ReserveB.Int64())

	swapRes, err := srv.Swap(ctx, types.NewMsgSwap(
		trader.String(), 1, denomA, sdkmath.NewInt(10)))
	require.NoError(t, err)
	require.Equal(t, denomB, swapRes.TokenOut)
	require.Equal(t, int64(9), swapRes.AmountOut.Int64())
	require.Equal(t, int64(110), swapRes.ReserveA.Int64())
	require.Equal(t, int64(91), swapRes.ReserveB.Int64())

	removeRes, err := srv.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), 1, sdkmath.NewInt(30)))
	require.NoError(t, err)
	require.Equal(t, int64(33), removeRes.AmountA.Int64())
	require.Equal(t, int64(27), removeRes.AmountB.Int64())
	require.Equal(t, int64(77), removeRes.ReserveA.Int64())
	require.Equal(t, int64(64), removeRes.ReserveB.Int64())
}

func TestMsgServerRejectsInvalidMessages(t *testing.T) {
	k, _, ctx, _, provider := setupSeededPool(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.CreatePool(ctx, types.NewMsgCreatePool("not-an-address", denomA, denomB))
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), 0, sdkmath.NewInt(1), sdkmath.NewInt(1)))
	require.ErrorIs(t, err, types.ErrInvalidPoolId)

	_, err = srv.Swap(ctx, types.NewMsgSwap(
		provider.String(), 1, denomA, sdkmath.NewInt(0)))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = srv.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), 1, sdkmath.NewInt(-1)))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
