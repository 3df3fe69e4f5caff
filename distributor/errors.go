package distributor

import "errors"

var (
	// ErrDistributionDoesNotExist indicates no record for the share asset.
	ErrDistributionDoesNotExist = errors.New("distributor: distribution does not exist")

	// ErrDistributionExists indicates a registry insert for an existing record.
	ErrDistributionExists = errors.New("distributor: distribution already exists")

	// ErrInvalidState indicates an operation attempted in a state that
	// forbids it, including creation over an existing distribution.
	ErrInvalidState = errors.New("distributor: invalid state")

	// ErrInvalidAssetTransfer indicates the attached transfer's asset or
	// amount does not match the operation's requirement.
	ErrInvalidAssetTransfer = errors.New("distributor: invalid asset transfer")

	// ErrUnauthorized indicates a buyback attempted by a non-owner.
	ErrUnauthorized = errors.New("distributor: caller is not the owner")

	// ErrReserveExceeded indicates a purchase would push reserves past the
	// reserve price.
	ErrReserveExceeded = errors.New("distributor: reserve price exceeded")

	// ErrSupplyExhausted indicates a purchase for more shares than the
	// contract still holds.
	ErrSupplyExhausted = errors.New("distributor: share supply exhausted")

	// ErrZeroAmount indicates a purchase or sell of zero share units.
	ErrZeroAmount = errors.New("distributor: zero amount")

	// ErrZeroSupply indicates a creation with zero token supply.
	ErrZeroSupply = errors.New("distributor: zero token supply")

	// ErrZeroPrice indicates a creation with zero token price.
	ErrZeroPrice = errors.New("distributor: zero token price")

	// ErrCostOverflow indicates amount x price overflows uint64.
	ErrCostOverflow = errors.New("distributor: cost overflow")

	// ErrInvalidRecordData indicates a serialized Distribution is malformed.
	ErrInvalidRecordData = errors.New("distributor: invalid record data")
)
