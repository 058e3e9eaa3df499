package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/basin-labs/basinswap/x/amm/types"
)

func seededPool(id uint64, tokenA, tokenB string, reserveA, reserveB, shares int64) types.Pool {
	return types.Pool{
		Id: id, TokenA: tokenA, TokenB: tokenB,
		ReserveA:    sdkmath.NewInt(reserveA),
		ReserveB:    sdkmath.NewInt(reserveB),
		TotalShares: sdkmath.NewInt(shares),
	}
}

func TestGenesisStateValidate(t *testing.T) {
	holder := testAddr("holder")
	other := testAddr("other")

	tests := []struct {
		name    string
		genesis types.GenesisState
		wantErr string
	}{
		{
			name:    "default",
			genesis: *types.DefaultGenesis(),
		},
		{
			name: "valid with positions",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools:  []types.Pool{seededPool(1, "ubasin", "uusdt", 110, 91, 100)},
				Positions: []types.SharePosition{
					{PoolId: 1, Address: holder, Shares: sdkmath.NewInt(60)},
					{PoolId: 1, Address: other, Shares: sdkmath.NewInt(40)},
				},
				NextPoolId: 2,
			},
		},
		{
			name: "share sum mismatch",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools:  []types.Pool{seededPool(1, "ubasin", "uusdt", 110, 91, 100)},
				Positions: []types.SharePosition{
					{PoolId: 1, Address: holder, Shares: sdkmath.NewInt(60)},
				},
				NextPoolId: 2,
			},
			wantErr: "positions sum",
		},
		{
			name: "duplicate pool id",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools: []types.Pool{
					seededPool(1, "ubasin", "uusdt", 100, 100, 100),
					seededPool(1, "uatom", "ubasin", 100, 100, 100),
				},
				Positions: []types.SharePosition{
					{PoolId: 1, Address: holder, Shares: sdkmath.NewInt(200)},
				},
				NextPoolId: 2,
			},
			wantErr: "duplicate pool id",
		},
		{
			name: "duplicate pair",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools: []types.Pool{
					*types.NewPool(1, "ubasin", "uusdt"),
					*types.NewPool(2, "ubasin", "uusdt"),
				},
				NextPoolId: 3,
			},
			wantErr: "duplicate pool for pair",
		},
		{
			// Distinct pairs of slash-bearing denoms are not duplicates.
			name: "slash denoms on distinct pairs",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools: []types.Pool{
					*types.NewPool(1, "a/b", "c"),
					*types.NewPool(2, "a", "b/c"),
				},
				NextPoolId: 3,
			},
		},
		{
			name: "position for unknown pool",
			genesis: types.GenesisState{
				Params: types.DefaultParams(),
				Pools:  []types.Pool{*types.NewPool(1, "ubasin", "uusdt")},
				Positions: []types.SharePosition{
					{PoolId: 9, Address: holder, Shares: sdkmath.NewInt(10)},
				},
				NextPoolId: 2,
			},
			wantErr: "unknown pool",
		},
		{
			name: "pool id beyond counter",
			genesis: types.GenesisState{
				Params:     types.DefaultParams(),
				Pools:      []types.Pool{*types.NewPool(5, "ubasin", "uusdt")},
				NextPoolId: 2,
			},
			wantErr: "next pool id",
		},
		{
			name: "invalid params",
			genesis: types.GenesisState{
				Params:     types.Params{SwapFee: sdkmath.LegacyNewDec(2)},
				NextPoolId: 1,
			},
			wantErr: "invalid params",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genesis.Validate()
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
