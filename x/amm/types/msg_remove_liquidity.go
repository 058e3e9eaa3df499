package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity burns share units and withdraws the proportional amount
// of both reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolId uint64, shares math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PoolId:   poolId,
		Shares:   shares,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	return nil
}
