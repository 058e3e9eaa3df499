package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/basin-labs/basinswap/testutil/keeper"
	"github.com/basin-labs/basinswap/x/amm/types"
)

func TestGenesisExportImportRoundTrip(t *testing.T) {
	k, bank, ctx, poolID, provider := setupSeededPool(t)
	trader := testAddr("trader")
	fundTrader(t, bank, trader)

	// Build some non-trivial state: a skewed pool, a second provider, and a
	// second (unseeded) pool.
	_, _, _, err := k.Swap(ctx, trader, poolID, denomA, sdkmath.NewInt(10))
	require.NoError(t, err)
	_, _, err = k.AddLiquidity(ctx, provider, poolID, sdkmath.NewInt(11), sdkmath.NewInt(9))
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, provider, denomA, "uatom")
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 2)
	require.Len(t, exported.Positions, 1)
	require.Equal(t, uint64(3), exported.NextPoolId)

	// Restore into a fresh keeper and compare the round trip.
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reExported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reExported)

	pool, found := k2.GetPool(ctx2, poolID)
	require.True(t, found)
	require.Equal(t, int64(121), pool.ReserveA.Int64())
	require.Equal(t, int64(100), pool.ReserveB.Int64())
	require.Equal(t, int64(110), pool.TotalShares.Int64())
	require.Equal(t, int64(110), k2.GetShares(ctx2, poolID, provider).Int64())

	// The pair index survives the round trip.
	byPair, found := k2.GetPoolByDenoms(ctx2, denomB, denomA)
	require.True(t, found)
	require.Equal(t, poolID, byPair.Id)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.Pool{{
			Id: 1, TokenA: denomA, TokenB: denomB,
			ReserveA:    sdkmath.NewInt(100),
			ReserveB:    sdkmath.NewInt(100),
			TotalShares: sdkmath.NewInt(100),
		}},
		// No positions: the share sum does not cover the pool total.
		Positions:  []types.SharePosition{},
		NextPoolId: 2,
	}
	require.Error(t, k.InitGenesis(ctx, gs))
}

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Empty(t, gs.Pools)
	require.Equal(t, uint64(1), gs.NextPoolId)
}
