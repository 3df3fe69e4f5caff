package distributor

import (
	"fmt"
	"sync"

	"github.com/fracnftorg/libfracnft-go/asset"
)

// Registry maps a share-asset identifier to its single Distribution record.
type Registry interface {
	// Get retrieves the record for the share asset. Returns
	// ErrDistributionDoesNotExist if no record exists. The returned record
	// is a copy; mutations take effect only through Update.
	Get(id asset.ID) (*Distribution, error)

	// Insert stores a new record. Returns ErrDistributionExists if a record
	// already exists for the share asset.
	Insert(id asset.ID, d *Distribution) error

	// Update overwrites the record for the share asset. Returns
	// ErrDistributionDoesNotExist if no record exists.
	Update(id asset.ID, d *Distribution) error
}

// MemRegistry is an in-memory implementation of Registry for testing.
type MemRegistry struct {
	mu      sync.RWMutex
	records map[asset.ID]Distribution
}

// Compile-time interface check.
var _ Registry = (*MemRegistry)(nil)

// NewMemRegistry creates a new empty in-memory registry.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{records: make(map[asset.ID]Distribution)}
}

// Get retrieves the record for the share asset.
func (r *MemRegistry) Get(id asset.ID) (*Distribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDistributionDoesNotExist, id)
	}
	return &d, nil
}

// Insert stores a new record.
func (r *MemRegistry) Insert(id asset.ID, d *Distribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; exists {
		return fmt.Errorf("%w: %s", ErrDistributionExists, id)
	}
	r.records[id] = *d
	return nil
}

// Update overwrites the record for the share asset.
func (r *MemRegistry) Update(id asset.ID, d *Distribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return fmt.Errorf("%w: %s", ErrDistributionDoesNotExist, id)
	}
	r.records[id] = *d
	return nil
}
