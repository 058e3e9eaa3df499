package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetShares returns a holder's share balance in a pool. Holders without an
// entry have a zero balance.
func (k Keeper) GetShares(ctx context.Context, poolID uint64, holder sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(SharesKey(poolID, holder))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// SetShares writes a holder's share balance, deleting the entry when the
// balance reaches zero so the ledger never carries empty positions.
func (k Keeper) SetShares(ctx context.Context, poolID uint64, holder sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := SharesKey(poolID, holder)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// IterateShares calls fn for every share position in a pool, stopping when
// fn returns true.
func (k Keeper) IterateShares(ctx context.Context, poolID uint64, fn func(holder sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	prefix := SharesPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		holder := sdk.AccAddress(iterator.Key()[len(prefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if fn(holder, shares) {
			break
		}
	}
}

// TotalSharesHeld sums every holder's balance in a pool. The sum must equal
// the pool's recorded total; the share conservation invariant checks this.
func (k Keeper) TotalSharesHeld(ctx context.Context, poolID uint64) math.Int {
	total := math.ZeroInt()
	k.IterateShares(ctx, poolID, func(_ sdk.AccAddress, shares math.Int) bool {
		total = total.Add(shares)
		return false
	})
	return total
}
