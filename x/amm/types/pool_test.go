package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/basin-labs/basinswap/x/amm/types"
)

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name   string
		pool   types.Pool
		expErr error
	}{
		{
			name: "valid unseeded",
			pool: *types.NewPool(1, "ubasin", "uusdt"),
		},
		{
			name: "valid seeded",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "uusdt",
				ReserveA:    sdkmath.NewInt(100),
				ReserveB:    sdkmath.NewInt(100),
				TotalShares: sdkmath.NewInt(100),
			},
		},
		{
			name: "zero id",
			pool: types.Pool{
				Id: 0, TokenA: "ubasin", TokenB: "uusdt",
				ReserveA:    sdkmath.ZeroInt(),
				ReserveB:    sdkmath.ZeroInt(),
				TotalShares: sdkmath.ZeroInt(),
			},
			expErr: types.ErrInvalidPoolId,
		},
		{
			name: "identical denoms",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "ubasin",
				ReserveA:    sdkmath.ZeroInt(),
				ReserveB:    sdkmath.ZeroInt(),
				TotalShares: sdkmath.ZeroInt(),
			},
			expErr: types.ErrInvalidTokenPair,
		},
		{
			name: "denoms out of order",
			pool: types.Pool{
				Id: 1, TokenA: "uusdt", TokenB: "ubasin",
				ReserveA:    sdkmath.ZeroInt(),
				ReserveB:    sdkmath.ZeroInt(),
				TotalShares: sdkmath.ZeroInt(),
			},
			expErr: types.ErrInvalidTokenPair,
		},
		{
			name: "reserves without shares",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "uusdt",
				ReserveA:    sdkmath.NewInt(100),
				ReserveB:    sdkmath.NewInt(100),
				TotalShares: sdkmath.ZeroInt(),
			},
			expErr: types.ErrInvalidPoolState,
		},
		{
			name: "shares without reserves",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "uusdt",
				ReserveA:    sdkmath.NewInt(100),
				ReserveB:    sdkmath.ZeroInt(),
				TotalShares: sdkmath.NewInt(100),
			},
			expErr: types.ErrInvalidPoolState,
		},
		{
			name: "negative reserve",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "uusdt",
				ReserveA:    sdkmath.NewInt(-1),
				ReserveB:    sdkmath.NewInt(100),
				TotalShares: sdkmath.NewInt(100),
			},
			expErr: types.ErrInvalidPoolState,
		},
		{
			name: "nil amounts",
			pool: types.Pool{
				Id: 1, TokenA: "ubasin", TokenB: "uusdt",
			},
			expErr: types.ErrInvalidPoolState,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pool.Validate()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPoolSeededAndProduct(t *testing.T) {
	pool := types.NewPool(1, "ubasin", "uusdt")
	require.False(t, pool.Seeded())
	require.True(t, pool.Product().IsZero())

	pool.ReserveA = sdkmath.NewInt(110)
	pool.ReserveB = sdkmath.NewInt(91)
	pool.TotalShares = sdkmath.NewInt(100)
	require.True(t, pool.Seeded())
	require.Equal(t, int64(10_010), pool.Product().Int64())
}

func TestPoolMarshalRoundTrip(t *testing.T) {
	pool := types.Pool{
		Id: 7, TokenA: "ubasin", TokenB: "uusdt",
		ReserveA:    sdkmath.NewInt(110),
		ReserveB:    sdkmath.NewInt(91),
		TotalShares: sdkmath.NewInt(100),
	}

	bz, err := pool.Marshal()
	require.NoError(t, err)

	var decoded types.Pool
	require.NoError(t, decoded.Unmarshal(bz))
	require.Equal(t, pool.Id, decoded.Id)
	require.True(t, decoded.ReserveA.Equal(pool.ReserveA))
	require.True(t, decoded.ReserveB.Equal(pool.ReserveB))
	require.True(t, decoded.TotalShares.Equal(pool.TotalShares))
}
