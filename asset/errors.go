package asset

import "errors"

var (
	// ErrInvalidID indicates an asset identifier of the wrong length.
	ErrInvalidID = errors.New("asset: invalid asset id")

	// ErrZeroAmount indicates a mint or transfer of zero units.
	ErrZeroAmount = errors.New("asset: zero amount")

	// ErrInsufficientBalance indicates the holder does not cover the transfer.
	ErrInsufficientBalance = errors.New("asset: insufficient balance")

	// ErrSupplyOverflow indicates a mint would overflow a holder balance.
	ErrSupplyOverflow = errors.New("asset: balance overflow")
)
