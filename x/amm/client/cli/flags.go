package cli

const (
	// flagTokenB marks the given amount as the asset B side of a deposit.
	flagTokenB = "token-b"
)
