package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors. Every mutating operation evaluates its
// preconditions against these before any store write, so a returned error
// always means zero state mutation.
var (
	ErrInvalidAmount      = errors.Register(ModuleName, 2, "invalid amount")
	ErrRatioMismatch      = errors.Register(ModuleName, 3, "deposit does not match pool ratio")
	ErrInsufficientShares = errors.Register(ModuleName, 4, "insufficient liquidity shares")
	ErrInsufficientOutput = errors.Register(ModuleName, 5, "insufficient swap output")
	ErrPoolUnseeded       = errors.Register(ModuleName, 6, "pool has no liquidity")
	ErrTransferFailed     = errors.Register(ModuleName, 7, "asset transfer failed")
	ErrPoolNotFound       = errors.Register(ModuleName, 8, "pool not found")
	ErrPoolAlreadyExists  = errors.Register(ModuleName, 9, "pool already exists")
	ErrInvalidTokenPair   = errors.Register(ModuleName, 10, "invalid token pair")
	ErrInvalidAddress     = errors.Register(ModuleName, 11, "invalid address")
	ErrOverflow           = errors.Register(ModuleName, 12, "arithmetic overflow")
	ErrInvalidPoolState   = errors.Register(ModuleName, 13, "invalid pool state")
	ErrInvalidPoolId      = errors.Register(ModuleName, 14, "invalid pool id")
)
