package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
)

// Pool is the full persisted state of one trading pair: two reserves and the
// total of all issued ownership shares. Per-holder share balances live in
// their own store entries keyed by (pool id, holder address).
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns an empty, unseeded pool for the given pair. Token denoms
// are expected to be distinct and lexicographically ordered by the caller.
func NewPool(id uint64, tokenA, tokenB string) *Pool {
	return &Pool{
		Id:          id,
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Seeded reports whether the pool has received its initial deposit. A seeded
// pool has strictly positive reserves on both sides.
func (p Pool) Seeded() bool {
	return !p.TotalShares.IsZero()
}

// Product returns the constant-product invariant reserveA * reserveB.
func (p Pool) Product() math.Int {
	return p.ReserveA.Mul(p.ReserveB)
}

// Validate checks internal consistency: a pool either holds no liquidity at
// all or has positive reserves on both sides backing its shares.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenPair.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrap("token denoms must be different")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidTokenPair.Wrapf("token denoms out of order: %s > %s", p.TokenA, p.TokenB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("nil pool amounts")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative pool amounts")
	}
	if p.TotalShares.IsZero() {
		if !p.ReserveA.IsZero() || !p.ReserveB.IsZero() {
			return ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
		}
		return nil
	}
	if p.ReserveA.IsZero() || p.ReserveB.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}
	return nil
}

// Marshal encodes the pool for storage.
func (p Pool) Marshal() ([]byte, error) {
	bz, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal pool %d: %w", p.Id, err)
	}
	return bz, nil
}

// Unmarshal decodes a pool from its stored form.
func (p *Pool) Unmarshal(bz []byte) error {
	if err := json.Unmarshal(bz, p); err != nil {
		return fmt.Errorf("unmarshal pool: %w", err)
	}
	return nil
}
