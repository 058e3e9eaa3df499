package keeper

import (
	"context"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// GetParams returns the module parameters, falling back to defaults when
// none are stored.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := params.Unmarshal(bz); err != nil {
		panic(err)
	}
	return params
}

// SetParams stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := params.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
