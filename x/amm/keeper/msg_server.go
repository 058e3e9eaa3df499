package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/basin-labs/basinswap/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the MsgServer implementation backed by the keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	pool, err := m.Keeper.CreatePool(ctx, creator, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

func (m msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}
	pool, shares, err := m.Keeper.AddLiquidity(ctx, provider, msg.PoolId, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{
		Shares:   shares,
		ReserveA: pool.ReserveA,
		ReserveB: pool.ReserveB,
	}, nil
}

func (m msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %s", err)
	}
	pool, amountA, amountB, err := m.Keeper.RemoveLiquidity(ctx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{
		AmountA:  amountA,
		AmountB:  amountB,
		ReserveA: pool.ReserveA,
		ReserveB: pool.ReserveB,
	}, nil
}

func (m msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}
	pool, tokenOut, amountOut, err := m.Keeper.Swap(ctx, trader, msg.PoolId, msg.TokenIn, msg.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{
		TokenOut:  tokenOut,
		AmountOut: amountOut,
		ReserveA:  pool.ReserveA,
		ReserveB:  pool.ReserveB,
	}, nil
}
