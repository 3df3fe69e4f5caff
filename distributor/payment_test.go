package distributor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransfer(t *testing.T) {
	want := makeAssetID(0xA1)
	other := makeAssetID(0xA2)

	tests := []struct {
		name    string
		got     AttachedTransfer
		amount  uint64
		wantErr bool
	}{
		{"exact match", AttachedTransfer{Asset: want, Amount: 100}, 100, false},
		{"zero required zero attached", AttachedTransfer{Asset: want, Amount: 0}, 0, false},
		{"wrong asset", AttachedTransfer{Asset: other, Amount: 100}, 100, true},
		{"underpayment", AttachedTransfer{Asset: want, Amount: 99}, 100, true},
		{"overpayment", AttachedTransfer{Asset: want, Amount: 101}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransfer(tt.got, want, tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAssetTransfer)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCost(t *testing.T) {
	got, err := Cost(4, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), got)

	got, err = Cost(0, 10)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = Cost(10, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCost_Overflow(t *testing.T) {
	_, err := Cost(math.MaxUint64, 2)
	assert.ErrorIs(t, err, ErrCostOverflow)

	// Boundary: MaxUint64 x 1 is fine.
	got, err := Cost(math.MaxUint64, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}
