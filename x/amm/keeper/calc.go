package keeper

import (
	"cosmossdk.io/math"

	"github.com/basin-labs/basinswap/x/amm/types"
)

// Pure ledger calculators. The state-mutating operations and the simulation
// queries both call these, so a quoted amount always matches what execution
// would do. All division truncates toward zero.

// SwapOutput computes the constant-product output for amountIn paid into the
// reserveIn side:
//
//	out = amountIn * reserveOut / (reserveIn + amountIn)
//
// A non-zero fee is deducted from the input before the formula is applied.
// The result is strictly less than reserveOut and strictly positive, or an
// error is returned.
func SwapOutput(amountIn, reserveIn, reserveOut math.Int, fee math.LegacyDec) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrPoolUnseeded.Wrap("cannot swap against empty reserves")
	}

	effectiveIn := amountIn
	if !fee.IsNil() && fee.IsPositive() {
		effectiveIn = math.LegacyNewDecFromInt(amountIn).Mul(math.LegacyOneDec().Sub(fee)).TruncateInt()
		if !effectiveIn.IsPositive() {
			return math.Int{}, types.ErrInsufficientOutput.Wrap("swap input consumed by fee")
		}
	}

	denominator, err := SafeAdd(reserveIn, effectiveIn)
	if err != nil {
		return math.Int{}, err
	}
	amountOut, err := SafeMulDiv(effectiveIn, reserveOut, denominator)
	if err != nil {
		return math.Int{}, err
	}

	if amountOut.IsZero() {
		return math.Int{}, types.ErrInsufficientOutput.Wrapf(
			"swap of %s yields zero output against reserves %s/%s", amountIn, reserveIn, reserveOut)
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientOutput.Wrapf(
			"swap output %s would drain reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}

// RequiredDepositB computes the exact amount of asset B that must accompany
// a deposit of amountA at the current reserve ratio:
//
//	amountB = amountA * reserveB / reserveA
func RequiredDepositB(amountA, reserveA, reserveB math.Int) (math.Int, error) {
	if amountA.IsNil() || !amountA.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.Int{}, types.ErrPoolUnseeded.Wrap("pool ratio undefined without reserves")
	}
	return SafeMulDiv(amountA, reserveB, reserveA)
}

// RequiredDepositA is the mirror of RequiredDepositB for callers holding a
// fixed amount of asset B:
//
//	amountA = amountB * reserveA / reserveB
//
// Truncation means the returned amountA is the largest deposit of asset A
// that amountB can cover; pair it with RequiredDepositB(amountA, ...) to get
// the exact counterpart the ratio check accepts.
func RequiredDepositA(amountB, reserveA, reserveB math.Int) (math.Int, error) {
	if amountB.IsNil() || !amountB.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.Int{}, types.ErrPoolUnseeded.Wrap("pool ratio undefined without reserves")
	}
	return SafeMulDiv(amountB, reserveA, reserveB)
}

// SharesForDeposit computes the shares minted for a deposit of amountA into
// a seeded pool:
//
//	shares = amountA * totalShares / reserveA
func SharesForDeposit(amountA, reserveA, totalShares math.Int) (math.Int, error) {
	if amountA.IsNil() || !amountA.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if !reserveA.IsPositive() || !totalShares.IsPositive() {
		return math.Int{}, types.ErrPoolUnseeded.Wrap("pool has no shares outstanding")
	}
	return SafeMulDiv(amountA, totalShares, reserveA)
}

// WithdrawAmounts computes the amounts paid out for burning shareAmount
// shares:
//
//	amountA = shareAmount * reserveA / totalShares
//	amountB = shareAmount * reserveB / totalShares
//
// Burning every outstanding share returns both reserves in full.
func WithdrawAmounts(shareAmount, reserveA, reserveB, totalShares math.Int) (math.Int, math.Int, error) {
	if shareAmount.IsNil() || !shareAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("share amount must be positive")
	}
	if !totalShares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrPoolUnseeded.Wrap("pool has no shares outstanding")
	}
	amountA, err := SafeMulDiv(shareAmount, reserveA, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err := SafeMulDiv(shareAmount, reserveB, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountA, amountB, nil
}
