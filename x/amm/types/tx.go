package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface for the AMM module.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// MsgCreatePoolResponse is the response for CreatePool.
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgAddLiquidityResponse is the response for AddLiquidity.
type MsgAddLiquidityResponse struct {
	Shares   math.Int `json:"shares"`
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// MsgRemoveLiquidityResponse is the response for RemoveLiquidity.
type MsgRemoveLiquidityResponse struct {
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// MsgSwapResponse is the response for Swap.
type MsgSwapResponse struct {
	TokenOut  string   `json:"token_out"`
	AmountOut math.Int `json:"amount_out"`
	ReserveA  math.Int `json:"reserve_a"`
	ReserveB  math.Int `json:"reserve_b"`
}
