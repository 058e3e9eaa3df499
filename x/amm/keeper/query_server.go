package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/basin-labs/basinswap/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns the QueryServer implementation backed by the
// keeper. Queries read state only.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q queryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	var (
		pool  types.Pool
		found bool
	)
	switch {
	case req.PoolId != 0:
		pool, found = q.GetPool(ctx, req.PoolId)
	case req.TokenA != "" && req.TokenB != "":
		pool, found = q.GetPoolByDenoms(ctx, req.TokenA, req.TokenB)
	default:
		return nil, status.Error(codes.InvalidArgument, "pool id or token pair required")
	}
	if !found {
		return nil, types.ErrPoolNotFound
	}
	return &types.QueryPoolResponse{Pool: pool, Product: pool.Product()}, nil
}

func (q queryServer) Pools(ctx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	return &types.QueryPoolsResponse{Pools: q.GetAllPools(ctx)}, nil
}

func (q queryServer) Shares(ctx context.Context, req *types.QuerySharesRequest) (*types.QuerySharesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	holder, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("holder: %s", err)
	}
	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	return &types.QuerySharesResponse{
		Shares:      q.GetShares(ctx, req.PoolId, holder),
		TotalShares: pool.TotalShares,
	}, nil
}

func (q queryServer) SimulateSwap(ctx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	var reserveIn, reserveOut math.Int
	var tokenOut string
	switch req.TokenIn {
	case pool.TokenA:
		reserveIn, reserveOut, tokenOut = pool.ReserveA, pool.ReserveB, pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut, tokenOut = pool.ReserveB, pool.ReserveA, pool.TokenA
	default:
		return nil, types.ErrInvalidTokenPair.Wrapf(
			"pool %d trades %s/%s, not %s", req.PoolId, pool.TokenA, pool.TokenB, req.TokenIn)
	}
	if !pool.Seeded() {
		return nil, types.ErrPoolUnseeded.Wrapf("pool %d", req.PoolId)
	}
	amountOut, err := SwapOutput(req.AmountIn, reserveIn, reserveOut, q.GetParams(ctx).SwapFee)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulateSwapResponse{TokenOut: tokenOut, AmountOut: amountOut}, nil
}

func (q queryServer) SimulateDeposit(ctx context.Context, req *types.QuerySimulateDepositRequest) (*types.QuerySimulateDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	givenA := !req.AmountA.IsNil() && req.AmountA.IsPositive()
	givenB := !req.AmountB.IsNil() && req.AmountB.IsPositive()
	if givenA == givenB {
		return nil, types.ErrInvalidAmount.Wrap("exactly one of amount_a and amount_b must be positive")
	}

	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	if !pool.Seeded() {
		// A seeding deposit has no ratio constraint and mints amountA
		// shares; the zero AmountB signals that the caller chooses the
		// counterpart amount freely. With only asset B given there is no
		// ratio to derive asset A from.
		if !givenA {
			return nil, types.ErrPoolUnseeded.Wrapf("pool %d has no ratio to derive amount_a from", req.PoolId)
		}
		return &types.QuerySimulateDepositResponse{
			AmountA: req.AmountA,
			AmountB: math.ZeroInt(),
			Shares:  req.AmountA,
		}, nil
	}

	amountA := req.AmountA
	if givenB {
		// The largest asset A deposit the given asset B amount can cover.
		var err error
		amountA, err = RequiredDepositA(req.AmountB, pool.ReserveA, pool.ReserveB)
		if err != nil {
			return nil, err
		}
	}
	amountB, err := RequiredDepositB(amountA, pool.ReserveA, pool.ReserveB)
	if err != nil {
		return nil, err
	}
	shares, err := SharesForDeposit(amountA, pool.ReserveA, pool.TotalShares)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulateDepositResponse{AmountA: amountA, AmountB: amountB, Shares: shares}, nil
}

func (q queryServer) SimulateWithdraw(ctx context.Context, req *types.QuerySimulateWithdrawRequest) (*types.QuerySimulateWithdrawResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	amountA, amountB, err := WithdrawAmounts(req.Shares, pool.ReserveA, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulateWithdrawResponse{AmountA: amountA, AmountB: amountB}, nil
}
