package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
)

// Params holds the module parameters. SwapFee is a fraction of the input
// amount retained by the pool before the constant-product formula is applied;
// the default is zero, so swaps follow the plain formula.
type Params struct {
	SwapFee math.LegacyDec `json:"swap_fee"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		SwapFee: math.LegacyZeroDec(),
	}
}

// Validate ensures the parameters are well-formed.
func (p Params) Validate() error {
	if p.SwapFee.IsNil() {
		return fmt.Errorf("swap fee cannot be nil")
	}
	if p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("swap fee must be in [0, 1): %s", p.SwapFee)
	}
	return nil
}

// Marshal encodes the parameters for storage.
func (p Params) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes parameters from their stored form.
func (p *Params) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}
