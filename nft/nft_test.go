package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fracnftorg/libfracnft-go/asset"
)

func makeRef(seed byte, index uint64) TokenRef {
	var contract [32]byte
	for i := range contract {
		contract[i] = seed
	}
	return TokenRef{Contract: contract, TokenIndex: index}
}

func makeIdentity(seed byte) asset.Identity {
	var id asset.Identity
	for i := range id {
		id[i] = seed
	}
	return id
}

func TestMemCustody_MintAndOwner(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)
	alice := makeIdentity(0xAA)

	require.NoError(t, c.Mint(ref, alice))

	owner, err := c.OwnerOf(ref)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
}

func TestMemCustody_MintDuplicate(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)

	require.NoError(t, c.Mint(ref, makeIdentity(0xAA)))
	err := c.Mint(ref, makeIdentity(0xBB))
	assert.ErrorIs(t, err, ErrTokenExists)
}

func TestMemCustody_OwnerOfUnknown(t *testing.T) {
	c := NewMemCustody()
	_, err := c.OwnerOf(makeRef(0x01, 7))
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestMemCustody_ApproveRequiresOwner(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)
	alice := makeIdentity(0xAA)
	mallory := makeIdentity(0xBB)
	contract := makeIdentity(0xCC)

	require.NoError(t, c.Mint(ref, alice))

	err := c.Approve(ref, mallory, contract)
	assert.ErrorIs(t, err, ErrNotTokenOwner)

	require.NoError(t, c.Approve(ref, alice, contract))
}

func TestMemCustody_TransferToContract(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)
	alice := makeIdentity(0xAA)
	contract := makeIdentity(0xCC)

	require.NoError(t, c.Mint(ref, alice))

	// Without approval the custody transfer is rejected.
	err := c.TransferToContract(ref, contract)
	assert.ErrorIs(t, err, ErrNotApproved)

	require.NoError(t, c.Approve(ref, alice, contract))
	require.NoError(t, c.TransferToContract(ref, contract))

	owner, err := c.OwnerOf(ref)
	require.NoError(t, err)
	assert.Equal(t, contract, owner)

	// Approval is single-use: a second custody transfer needs a new one.
	err = c.TransferToContract(ref, contract)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestMemCustody_TransferToOwner(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)
	alice := makeIdentity(0xAA)
	contract := makeIdentity(0xCC)

	require.NoError(t, c.Mint(ref, alice))
	require.NoError(t, c.Approve(ref, alice, contract))
	require.NoError(t, c.TransferToContract(ref, contract))

	require.NoError(t, c.TransferToOwner(ref, contract, alice))

	owner, err := c.OwnerOf(ref)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
}

func TestMemCustody_TransferToOwnerRequiresCustody(t *testing.T) {
	c := NewMemCustody()
	ref := makeRef(0x01, 0)
	alice := makeIdentity(0xAA)
	contract := makeIdentity(0xCC)

	require.NoError(t, c.Mint(ref, alice))

	err := c.TransferToOwner(ref, contract, alice)
	assert.ErrorIs(t, err, ErrNotTokenOwner)
}
