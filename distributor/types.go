// Package distributor implements the fractional-NFT distribution engine: the
// registry of Distribution records, the create/purchase/buyback/sell state
// machine, and the validation of caller-attached asset transfers.
//
// One Distribution exists per share asset. Its lifecycle is a one-way state
// machine: Selling from creation until the owner's buyback, then
// AcceptingReturns forever after, during which holders redeem shares for the
// payment asset deposited by the buyback.
package distributor

import (
	"github.com/fracnftorg/libfracnft-go/asset"
	"github.com/fracnftorg/libfracnft-go/nft"
)

// State is the lifecycle phase of a Distribution.
type State uint8

const (
	// StateSelling accepts purchases and the owner's buyback.
	StateSelling State = iota

	// StateAcceptingReturns accepts share redemptions only. Terminal.
	StateAcceptingReturns
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSelling:
		return "selling"
	case StateAcceptingReturns:
		return "accepting_returns"
	default:
		return "unknown"
	}
}

// Distribution is the record governing one fractionalized NFT, keyed in the
// registry by its share-asset identifier.
type Distribution struct {
	NFT          nft.TokenRef   // custodied token
	PaymentAsset asset.ID       // asset accepted for purchase/buyback/sell
	ReservePrice uint64         // cap on total collectible payment; 0 = unlimited
	Owner        asset.Identity // receives proceeds, may buy back
	TokenPrice   uint64         // payment units per share unit
	TokenSupply  uint64         // share units minted at creation, immutable
	// ReservesCollected is the running total received from purchases.
	// Monotonically non-decreasing while State is StateSelling.
	ReservesCollected uint64
	State             State
}

// AttachedTransfer describes the single inbound asset transfer a caller may
// attach to a state-changing call.
type AttachedTransfer struct {
	Asset  asset.ID
	Amount uint64
}
