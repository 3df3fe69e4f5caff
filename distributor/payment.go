package distributor

import (
	"fmt"
	"math"

	"github.com/fracnftorg/libfracnft-go/asset"
)

// ValidateTransfer checks the caller-attached transfer against the asset and
// amount an operation requires. Both must match exactly; the engine tolerates
// neither overpayment nor a substitute asset.
func ValidateTransfer(got AttachedTransfer, wantAsset asset.ID, wantAmount uint64) error {
	if got.Asset != wantAsset {
		return fmt.Errorf("%w: got asset %s, expected %s", ErrInvalidAssetTransfer, got.Asset, wantAsset)
	}
	if got.Amount != wantAmount {
		return fmt.Errorf("%w: got amount %d, expected %d", ErrInvalidAssetTransfer, got.Amount, wantAmount)
	}
	return nil
}

// Cost returns amount x price in payment-asset units, rejecting uint64
// overflow.
func Cost(amount, price uint64) (uint64, error) {
	if amount != 0 && price > math.MaxUint64/amount {
		return 0, fmt.Errorf("%w: %d x %d", ErrCostOverflow, amount, price)
	}
	return amount * price, nil
}
