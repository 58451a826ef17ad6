package domain

import "errors"

var (
	// ErrInsufficientFreeBalance is returned when a transfer or burn would dip into locked balance
	ErrInsufficientFreeBalance = errors.New("insufficient free balance")

	// ErrInsufficientSupply is returned when a burn exceeds the total supply
	ErrInsufficientSupply = errors.New("insufficient supply")

	// ErrInvalidAmount is returned when an amount is zero or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientAllowance is returned when a delegated transfer exceeds the approved amount
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrOnlyOwnerAccess is returned when a caller is not the component owner
	ErrOnlyOwnerAccess = errors.New("only owner access")

	// ErrPriceUnavailable is returned when the oracle reports a zero price
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrIntervalNotElapsed is returned when a rebase is attempted before the minimum interval has passed
	ErrIntervalNotElapsed = errors.New("rebase interval not elapsed")

	// ErrPrecondition is returned when a rebase or liquidity precondition does not hold
	ErrPrecondition = errors.New("precondition not met")
)
