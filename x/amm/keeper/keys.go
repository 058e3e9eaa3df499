package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// PoolByPairKeyPrefix is the prefix for indexing pools by token pair
	PoolByPairKeyPrefix = []byte{0x03}

	// SharesKeyPrefix is the prefix for per-holder share balances
	SharesKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}
)

// PoolKey returns the store key for a pool by ID.
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(PoolKeyPrefix, bz...)
}

// PoolByPairKey returns the index key for a pool by its ordered token pair.
// The denoms are joined with a NUL byte, which no valid denom contains, so
// pairs of slash-bearing denoms like ("a/b", "c") and ("a", "b/c") map to
// distinct keys.
func PoolByPairKey(tokenA, tokenB string) []byte {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	key := append(PoolByPairKeyPrefix, []byte(tokenA)...)
	key = append(key, 0x00)
	return append(key, []byte(tokenB)...)
}

// SharesPoolPrefix returns the prefix under which all share balances of one
// pool are stored.
func SharesPoolPrefix(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(SharesKeyPrefix, bz...)
}

// SharesKey returns the store key for one holder's share balance in a pool.
func SharesKey(poolID uint64, holder sdk.AccAddress) []byte {
	return append(SharesPoolPrefix(poolID), holder.Bytes()...)
}
