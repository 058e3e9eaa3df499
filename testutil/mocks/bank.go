package mocks

import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is an in-memory asset ledger implementing the module's expected
// bank interface. Transfers move real balances between addresses so tests can
// assert that pool reserves and account balances stay in lockstep.
type BankKeeper struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins

	// FailTransfers makes every SendCoins call fail. Used to verify that a
	// failed transfer leaves pool state untouched.
	FailTransfers bool
}

// NewBankKeeper returns an empty mock bank.
func NewBankKeeper() *BankKeeper {
	return &BankKeeper{balances: make(map[string]sdk.Coins)}
}

// Fund credits an address with coins.
func (b *BankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

// SendCoins moves coins between accounts, failing on insufficient funds.
func (b *BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FailTransfers {
		return fmt.Errorf("transfers disabled")
	}

	from := b.balances[fromAddr.String()]
	if !amt.IsAllLTE(from) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	b.balances[fromAddr.String()] = from.Sub(amt...)
	b.balances[toAddr.String()] = b.balances[toAddr.String()].Add(amt...)
	return nil
}

// GetBalance returns the balance of one denom for an address.
func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.balances[addr.String()]
	return sdk.NewCoin(denom, balance.AmountOf(denom))
}
