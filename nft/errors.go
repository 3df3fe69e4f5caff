package nft

import "errors"

var (
	// ErrTokenNotFound indicates the token reference is not in custody records.
	ErrTokenNotFound = errors.New("nft: token not found")

	// ErrTokenExists indicates a mint for an already-recorded token.
	ErrTokenExists = errors.New("nft: token already exists")

	// ErrNotTokenOwner indicates the caller does not own the token.
	ErrNotTokenOwner = errors.New("nft: not token owner")

	// ErrNotApproved indicates no prior approval covers the custody transfer.
	ErrNotApproved = errors.New("nft: transfer not approved")
)
