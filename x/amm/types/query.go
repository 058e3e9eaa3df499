package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the read-only query interface for the AMM module.
// Queries never mutate state.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Shares(context.Context, *QuerySharesRequest) (*QuerySharesResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
	SimulateDeposit(context.Context, *QuerySimulateDepositRequest) (*QuerySimulateDepositResponse, error)
	SimulateWithdraw(context.Context, *QuerySimulateWithdrawRequest) (*QuerySimulateWithdrawResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests one pool, by id or by token pair.
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id,omitempty"`
	TokenA string `json:"token_a,omitempty"`
	TokenB string `json:"token_b,omitempty"`
}

// QueryPoolResponse carries a pool and its derived constant product.
type QueryPoolResponse struct {
	Pool    Pool     `json:"pool"`
	Product math.Int `json:"product"`
}

// QueryPoolsRequest requests all pools.
type QueryPoolsRequest struct{}

// QueryPoolsResponse carries all pools.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QuerySharesRequest requests one holder's share balance in a pool.
type QuerySharesRequest struct {
	PoolId  uint64 `json:"pool_id"`
	Address string `json:"address"`
}

// QuerySharesResponse carries a holder's share balance and the pool total.
type QuerySharesResponse struct {
	Shares      math.Int `json:"shares"`
	TotalShares math.Int `json:"total_shares"`
}

// QuerySimulateSwapRequest pre-computes a swap without executing it.
type QuerySimulateSwapRequest struct {
	PoolId   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	AmountIn math.Int `json:"amount_in"`
}

// QuerySimulateSwapResponse carries the expected swap output.
type QuerySimulateSwapResponse struct {
	TokenOut  string   `json:"token_out"`
	AmountOut math.Int `json:"amount_out"`
}

// QuerySimulateDepositRequest pre-computes the exact deposit pair and minted
// shares from one given side. Exactly one of AmountA and AmountB must be
// positive; the other side is derived from the current reserve ratio.
type QuerySimulateDepositRequest struct {
	PoolId  uint64   `json:"pool_id"`
	AmountA math.Int `json:"amount_a,omitempty"`
	AmountB math.Int `json:"amount_b,omitempty"`
}

// QuerySimulateDepositResponse carries the exact deposit pair the ratio
// check accepts and the shares it would mint. For an unseeded pool AmountB
// is zero: the seeding deposit has no ratio constraint, so the caller picks
// any positive counterpart amount and it fixes the initial price.
type QuerySimulateDepositResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	Shares  math.Int `json:"shares"`
}

// QuerySimulateWithdrawRequest pre-computes the amounts returned for burning
// Shares.
type QuerySimulateWithdrawRequest struct {
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

// QuerySimulateWithdrawResponse carries the amounts a withdrawal would pay.
type QuerySimulateWithdrawResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}
