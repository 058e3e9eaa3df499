package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// CreatePool registers an empty pool for a token pair and returns its ID.
// The pool holds no liquidity until the first deposit seeds it; swaps and
// ratio-checked deposits are rejected until then. Denoms are stored in
// lexicographic order so each pair maps to exactly one pool.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string) (*types.Pool, error) {
	if tokenA == tokenB {
		return nil, types.ErrInvalidTokenPair.Wrapf("identical denoms %s", tokenA)
	}
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}

	if _, found := k.GetPoolByDenoms(ctx, tokenA, tokenB); found {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s", tokenA, tokenB)
	}

	poolID := k.nextPoolID(ctx)
	pool := types.NewPool(poolID, tokenA, tokenB)
	if err := k.SetPool(ctx, *pool); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreatePool,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
		sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
		sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
		sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
	))

	k.Logger(ctx).Info("pool created", "pool_id", poolID, "token_a", tokenA, "token_b", tokenB)
	if k.metrics != nil {
		k.metrics.PoolsCreated.Inc()
	}
	return pool, nil
}

// GetPool returns the pool with the given ID.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, bool) {
	bz := k.getStore(ctx).Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	if err := pool.Unmarshal(bz); err != nil {
		panic(err)
	}
	return pool, true
}

// GetPoolByDenoms returns the pool for a token pair in either denom order.
func (k Keeper) GetPoolByDenoms(ctx context.Context, tokenA, tokenB string) (types.Pool, bool) {
	bz := k.getStore(ctx).Get(PoolByPairKey(tokenA, tokenB))
	if bz == nil {
		return types.Pool{}, false
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

// SetPool persists a pool and its pair index entry.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	bz, err := pool.Marshal()
	if err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(PoolKey(pool.Id), bz)

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, pool.Id)
	store.Set(PoolByPairKey(pool.TokenA, pool.TokenB), idBz)
	return nil
}

// IteratePools calls fn for every pool, stopping when fn returns true.
func (k Keeper) IteratePools(ctx context.Context, fn func(pool types.Pool) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := pool.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if fn(pool) {
			break
		}
	}
}

// GetAllPools returns every pool ordered by ID.
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// nextPoolID returns the next pool ID and advances the counter.
func (k Keeper) nextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	next := uint64(1)
	if bz := store.Get(PoolCountKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next+1)
	store.Set(PoolCountKey, bz)
	return next
}

// GetNextPoolID reads the pool ID counter without advancing it.
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	if bz := k.getStore(ctx).Get(PoolCountKey); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}

// SetNextPoolID writes the pool ID counter. Used by genesis import.
func (k Keeper) SetNextPoolID(ctx context.Context, next uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	k.getStore(ctx).Set(PoolCountKey, bz)
}
