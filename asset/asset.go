// Package asset models the fungible side of the fractional-NFT engine:
// asset identifiers, holder identities, and the Ledger contract used for
// both the payment asset and the minted share asset.
//
// Share-asset identifiers are derived deterministically from the custodied
// NFT reference:
//
//	share_asset_id = HKDF-SHA256(nft_contract, token_index, "fracnft-share-asset")
//
// so that one NFT maps to exactly one share asset without any coordination.
package asset

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"golang.org/x/crypto/hkdf"
)

const (
	// IDSize is the length of a fungible asset identifier in bytes.
	IDSize = 32

	// IdentitySize is the length of a holder identity in bytes.
	IdentitySize = 20

	// ShareAssetInfo is the constant info string used in share-asset
	// identifier derivation.
	ShareAssetInfo = "fracnft-share-asset"
)

// ID identifies a fungible asset.
type ID [IDSize]byte

// String returns the hex encoding of the asset identifier.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// IDFromBytes converts a 32-byte slice into an asset ID.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) != IDSize {
		return ID{}, fmt.Errorf("%w: asset id must be %d bytes, got %d", ErrInvalidID, IDSize, len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// Identity identifies a balance holder: either an address (hash of a public
// key) or a contract (hash of its 32-byte contract id).
type Identity [IdentitySize]byte

// String returns the hex encoding of the identity.
func (i Identity) String() string {
	return hex.EncodeToString(i[:])
}

// IdentityFromPublicKey derives an address identity as
// Hash160(compressed pubkey).
func IdentityFromPublicKey(pub *ec.PublicKey) Identity {
	var out Identity
	copy(out[:], bsvhash.Hash160(pub.Compressed()))
	return out
}

// ContractIdentity derives the identity under which a contract holds
// balances, as Hash160(contract id).
func ContractIdentity(contract [32]byte) Identity {
	var out Identity
	copy(out[:], bsvhash.Hash160(contract[:]))
	return out
}

// DeriveShareAssetID derives the share-asset identifier for the NFT at
// (nftContract, tokenIndex). The derivation is deterministic: the same NFT
// reference always yields the same share asset.
//
// HKDF parameters: IKM = nftContract, Salt = big-endian token index,
// Info = ShareAssetInfo, Len = 32.
func DeriveShareAssetID(nftContract [32]byte, tokenIndex uint64) ID {
	salt := make([]byte, 8)
	binary.BigEndian.PutUint64(salt, tokenIndex)

	r := hkdf.New(sha256.New, nftContract[:], salt, []byte(ShareAssetInfo))
	var id ID
	// A 32-byte read from HKDF-SHA256 is always within the expansion limit.
	if _, err := io.ReadFull(r, id[:]); err != nil {
		panic(fmt.Sprintf("asset: hkdf expand: %v", err))
	}
	return id
}
