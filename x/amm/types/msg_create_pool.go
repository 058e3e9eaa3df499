package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool registers an empty pool for a token pair. The pool stays
// unseeded until the first AddLiquidity, which fixes the initial price ratio.
type MsgCreatePool struct {
	Creator string `json:"creator"`
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenA, tokenB string) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		TokenA:  tokenA,
		TokenB:  tokenB,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements the proto.Message interface
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePool) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	return sdk.MustSortJSON(amino.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations cannot be empty")
	}

	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}

	if err := sdk.ValidateDenom(msg.TokenA); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid denom for token A: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenB); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "invalid denom for token B: %s", err)
	}

	return nil
}
