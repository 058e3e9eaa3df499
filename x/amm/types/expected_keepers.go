package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the asset-transfer collaborator. The module pulls deposits
// from callers into its module account and pushes withdrawals and swap
// proceeds back out through it. Any error is fatal to the enclosing
// operation; the module never commits a partial ledger update around a
// failed transfer.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
