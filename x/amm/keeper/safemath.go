package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// Reserve and share values are economically meaningful, so arithmetic on
// them rejects on overflow instead of wrapping or panicking. math.Int caps
// at 2^256; these helpers check the bound through big.Int before converting
// back.

var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s + %s exceeds maximum value", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s exceeds maximum value", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv computes (a * b) / c with truncating division and overflow
// checking on the intermediate product. This is the shape of every ledger
// calculation in the module.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s exceeds maximum value", a, b)
	}
	return math.NewIntFromBigInt(intermediate.Quo(intermediate, c.BigInt())), nil
}
