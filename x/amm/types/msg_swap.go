package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap trades AmountIn of TokenIn for the opposing asset of the pool at
// the constant-product rate. The direction is determined by TokenIn.
type MsgSwap struct {
	Trader   string   `json:"trader"`
	PoolId   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	AmountIn math.Int `json:"amount_in"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, poolId uint64, tokenIn string, amountIn math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:   trader,
		PoolId:   poolId,
		TokenIn:  tokenIn,
		AmountIn: amountIn,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgSwap) Reset() { *msg = MsgSwap{} }

// String implements the proto.Message interface
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSwap) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if err := sdk.ValidateDenom(msg.TokenIn); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid input denom: %s", err)
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}

	return nil
}
