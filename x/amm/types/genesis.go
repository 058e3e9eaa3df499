package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// SharePosition is one holder's share balance in one pool.
type SharePosition struct {
	PoolId  uint64   `json:"pool_id"`
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// GenesisState is the full persisted state of the module: parameters, pools,
// per-holder share positions, and the pool id counter. Nothing else is
// stored, so this doubles as the snapshot/restore surface.
type GenesisState struct {
	Params     Params          `json:"params"`
	Pools      []Pool          `json:"pools"`
	Positions  []SharePosition `json:"positions"`
	NextPoolId uint64          `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state: no pools, zero swap fee.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []SharePosition{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed: valid params, valid
// pools with unique ids and pairs, and share positions that sum exactly to
// each pool's total.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	poolIDs := make(map[uint64]struct{}, len(gs.Pools))
	pairs := make(map[string]struct{}, len(gs.Pools))
	shareSums := make(map[uint64]math.Int, len(gs.Pools))

	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d: id not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := poolIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIDs[pool.Id] = struct{}{}

		// NUL-joined so slash-bearing denoms cannot make two pairs collide.
		pair := pool.TokenA + "\x00" + pool.TokenB
		if _, ok := pairs[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s/%s", pool.TokenA, pool.TokenB)
		}
		pairs[pair] = struct{}{}

		shareSums[pool.Id] = math.ZeroInt()
	}

	seen := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if _, ok := poolIDs[pos.PoolId]; !ok {
			return fmt.Errorf("position for unknown pool %d", pos.PoolId)
		}
		if pos.Address == "" {
			return fmt.Errorf("position for pool %d: empty address", pos.PoolId)
		}
		key := fmt.Sprintf("%d/%s", pos.PoolId, pos.Address)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate position for pool %d holder %s", pos.PoolId, pos.Address)
		}
		seen[key] = struct{}{}

		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("position for pool %d holder %s: shares must be positive", pos.PoolId, pos.Address)
		}
		shareSums[pos.PoolId] = shareSums[pos.PoolId].Add(pos.Shares)
	}

	// Share conservation: sum(shareOf[*]) == totalShares for every pool.
	for _, pool := range gs.Pools {
		if !shareSums[pool.Id].Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d: positions sum to %s, total shares %s",
				pool.Id, shareSums[pool.Id], pool.TotalShares)
		}
	}

	return nil
}
