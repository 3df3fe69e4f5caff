// Package nft implements single-token NFT custody for the fractional-NFT
// engine: token ownership, operator approval, and the custody transfers the
// distributor performs at create and buyback.
package nft

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/fracnftorg/libfracnft-go/asset"
)

// TokenRef identifies one NFT: the minting contract plus the token index
// within it.
type TokenRef struct {
	Contract   [32]byte
	TokenIndex uint64
}

// String returns a contract:index rendering of the reference.
func (r TokenRef) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(r.Contract[:]), r.TokenIndex)
}

// Custody holds NFTs and gates custody transfers on prior approval by the
// token's owner.
type Custody interface {
	// Mint records a new token owned by owner.
	Mint(ref TokenRef, owner asset.Identity) error

	// Approve records the operator allowed to take custody of the token.
	// Only meaningful while the current owner holds it; minting or a custody
	// transfer clears any previous approval.
	Approve(ref TokenRef, owner, operator asset.Identity) error

	// OwnerOf returns the token's current owner.
	OwnerOf(ref TokenRef) (asset.Identity, error)

	// TransferToContract moves custody of the token to the contract. The
	// contract must have been approved by the current owner.
	TransferToContract(ref TokenRef, contract asset.Identity) error

	// TransferToOwner moves custody of the token from the contract to the
	// destination.
	TransferToOwner(ref TokenRef, contract, destination asset.Identity) error
}

// tokenState tracks one custodied token.
type tokenState struct {
	owner    asset.Identity
	approved asset.Identity
	hasAppr  bool
}

// MemCustody is an in-memory implementation of Custody for testing.
type MemCustody struct {
	mu     sync.Mutex
	tokens map[TokenRef]*tokenState
}

// Compile-time interface check.
var _ Custody = (*MemCustody)(nil)

// NewMemCustody creates a new empty in-memory custody.
func NewMemCustody() *MemCustody {
	return &MemCustody{tokens: make(map[TokenRef]*tokenState)}
}

// Mint records a new token owned by owner.
func (c *MemCustody) Mint(ref TokenRef, owner asset.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tokens[ref]; exists {
		return fmt.Errorf("%w: %s", ErrTokenExists, ref)
	}
	c.tokens[ref] = &tokenState{owner: owner}
	return nil
}

// Approve records the operator allowed to take custody of the token.
func (c *MemCustody) Approve(ref TokenRef, owner, operator asset.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := c.tokens[ref]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, ref)
	}
	if tok.owner != owner {
		return fmt.Errorf("%w: %s does not own %s", ErrNotTokenOwner, owner, ref)
	}
	tok.approved = operator
	tok.hasAppr = true
	return nil
}

// OwnerOf returns the token's current owner.
func (c *MemCustody) OwnerOf(ref TokenRef) (asset.Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := c.tokens[ref]
	if !ok {
		return asset.Identity{}, fmt.Errorf("%w: %s", ErrTokenNotFound, ref)
	}
	return tok.owner, nil
}

// TransferToContract moves custody of the token to the contract.
func (c *MemCustody) TransferToContract(ref TokenRef, contract asset.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := c.tokens[ref]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, ref)
	}
	if !tok.hasAppr || tok.approved != contract {
		return fmt.Errorf("%w: %s not approved for %s", ErrNotApproved, contract, ref)
	}
	tok.owner = contract
	tok.hasAppr = false
	tok.approved = asset.Identity{}
	return nil
}

// TransferToOwner moves custody of the token from the contract to the
// destination.
func (c *MemCustody) TransferToOwner(ref TokenRef, contract, destination asset.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := c.tokens[ref]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, ref)
	}
	if tok.owner != contract {
		return fmt.Errorf("%w: %s is not custodian of %s", ErrNotTokenOwner, contract, ref)
	}
	tok.owner = destination
	tok.hasAppr = false
	tok.approved = asset.Identity{}
	return nil
}
