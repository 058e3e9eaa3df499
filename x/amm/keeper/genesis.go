package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// InitGenesis restores the module state from a genesis snapshot.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
	}
	for _, pos := range genState.Positions {
		holder, err := sdk.AccAddressFromBech32(pos.Address)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("position holder %s: %s", pos.Address, err)
		}
		k.SetShares(ctx, pos.PoolId, holder, pos.Shares)
	}
	k.SetNextPoolID(ctx, genState.NextPoolId)
	return nil
}

// ExportGenesis snapshots the full module state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:     k.GetParams(ctx),
		Pools:      k.GetAllPools(ctx),
		Positions:  []types.SharePosition{},
		NextPoolId: k.GetNextPoolID(ctx),
	}
	if genState.Pools == nil {
		genState.Pools = []types.Pool{}
	}
	for _, pool := range genState.Pools {
		k.IterateShares(ctx, pool.Id, func(holder sdk.AccAddress, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.SharePosition{
				PoolId:  pool.Id,
				Address: holder.String(),
				Shares:  shares,
			})
			return false
		})
	}
	return &genState
}
