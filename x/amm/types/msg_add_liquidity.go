package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity deposits both assets into a pool. On an unseeded pool the
// amounts are accepted as-is and fix the price ratio; afterwards AmountB must
// equal the proportional amount for AmountA exactly.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolId uint64, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		PoolId:   poolId,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount A must be positive")
	}

	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount B must be positive")
	}

	return nil
}
