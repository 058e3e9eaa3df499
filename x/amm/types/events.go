package types

// Event types emitted by the AMM module
const (
	EventTypeCreatePool      = "amm_create_pool"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeSwap            = "amm_swap"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyShares    = "shares"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyReserveA  = "reserve_a"
	AttributeKeyReserveB  = "reserve_b"
	AttributeKeyTimestamp = "timestamp"
)
