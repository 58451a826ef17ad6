package domain

// TokenID names one of the two reserve-side assets at the swap venue
// boundary.
type TokenID string

const (
	TokenCollateral TokenID = "collateral"
	TokenSynthetic  TokenID = "synthetic"
)

const (
	// ShareTokenName is the display name of the risk-bearing share token
	ShareTokenName = "Reserve Share"
	// ShareTokenSymbol is the ticker of the share token
	ShareTokenSymbol = "RSHARE"
	// ShareTokenDecimals is the fixed decimal count of all engine amounts
	ShareTokenDecimals = 8

	// DayMillis is the length of one emission day in unix milliseconds
	DayMillis = 24 * 3600 * 1000
)
