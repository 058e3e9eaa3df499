package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// Keeper owns the AMM store: the pool records, the per-holder share ledger,
// and the module parameters. All writes go through the four state-mutating
// operations; the hosting chain serializes them, so no internal locking is
// needed.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	metrics    *Metrics
}

// NewKeeper creates a new AMM Keeper instance.
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper) Keeper {
	return Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		metrics:    NewMetrics(),
	}
}

// getStore returns the module KVStore.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-tagged logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the module account address holding pool reserves.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}
