package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	Shares(ctx context.Context, in *QuerySharesRequest, opts ...grpc.CallOption) (*QuerySharesResponse, error)
	SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error)
	SimulateDeposit(ctx context.Context, in *QuerySimulateDepositRequest, opts ...grpc.CallOption) (*QuerySimulateDepositResponse, error)
	SimulateWithdraw(ctx context.Context, in *QuerySimulateWithdrawRequest, opts ...grpc.CallOption) (*QuerySimulateWithdrawResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient constructs a Query service client over a client connection.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/Params", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/Pool", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/Pools", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Shares(ctx context.Context, in *QuerySharesRequest, opts ...grpc.CallOption) (*QuerySharesResponse, error) {
	out := new(QuerySharesResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/Shares", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error) {
	out := new(QuerySimulateSwapResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/SimulateSwap", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateDeposit(ctx context.Context, in *QuerySimulateDepositRequest, opts ...grpc.CallOption) (*QuerySimulateDepositResponse, error) {
	out := new(QuerySimulateDepositResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/SimulateDeposit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateWithdraw(ctx context.Context, in *QuerySimulateWithdrawRequest, opts ...grpc.CallOption) (*QuerySimulateWithdrawResponse, error) {
	out := new(QuerySimulateWithdrawResponse)
	if err := c.cc.Invoke(ctx, "/basin.amm.v1.Query/SimulateWithdraw", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
