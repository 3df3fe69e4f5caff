package distributor

import (
	"encoding/binary"
	"fmt"

	"github.com/fracnftorg/libfracnft-go/asset"
)

// Fixed binary layout of a serialized Distribution:
// nft_contract(32) + token_index(8) + payment_asset(32) + reserve_price(8) +
// owner(20) + token_price(8) + token_supply(8) + reserves_collected(8) +
// state(1)
const recordSize = 32 + 8 + 32 + 8 + asset.IdentitySize + 8 + 8 + 8 + 1

// SerializeDistribution encodes a Distribution to its fixed binary format.
func SerializeDistribution(d *Distribution) []byte {
	buf := make([]byte, recordSize)
	offset := 0

	copy(buf[offset:offset+32], d.NFT.Contract[:])
	offset += 32

	binary.BigEndian.PutUint64(buf[offset:offset+8], d.NFT.TokenIndex)
	offset += 8

	copy(buf[offset:offset+32], d.PaymentAsset[:])
	offset += 32

	binary.BigEndian.PutUint64(buf[offset:offset+8], d.ReservePrice)
	offset += 8

	copy(buf[offset:offset+asset.IdentitySize], d.Owner[:])
	offset += asset.IdentitySize

	binary.BigEndian.PutUint64(buf[offset:offset+8], d.TokenPrice)
	offset += 8

	binary.BigEndian.PutUint64(buf[offset:offset+8], d.TokenSupply)
	offset += 8

	binary.BigEndian.PutUint64(buf[offset:offset+8], d.ReservesCollected)
	offset += 8

	buf[offset] = byte(d.State)
	return buf
}

// DeserializeDistribution decodes binary data into a Distribution.
func DeserializeDistribution(data []byte) (*Distribution, error) {
	if len(data) != recordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecordData, recordSize, len(data))
	}
	offset := 0

	d := &Distribution{}
	copy(d.NFT.Contract[:], data[offset:offset+32])
	offset += 32

	d.NFT.TokenIndex = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	copy(d.PaymentAsset[:], data[offset:offset+32])
	offset += 32

	d.ReservePrice = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	copy(d.Owner[:], data[offset:offset+asset.IdentitySize])
	offset += asset.IdentitySize

	d.TokenPrice = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	d.TokenSupply = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	d.ReservesCollected = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	state := State(data[offset])
	if state != StateSelling && state != StateAcceptingReturns {
		return nil, fmt.Errorf("%w: unknown state %d", ErrInvalidRecordData, data[offset])
	}
	d.State = state
	return d, nil
}
