package distributor

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/fracnftorg/libfracnft-go/asset"
)

var bucketDistributions = []byte("distributions")

// BoltRegistry is a bbolt-backed implementation of Registry. Records are
// stored in their fixed binary format keyed by share-asset identifier.
type BoltRegistry struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Registry = (*BoltRegistry)(nil)

// OpenBoltRegistry opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltRegistry(dbPath string) (*BoltRegistry, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("distributor: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("distributor: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDistributions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("distributor: create bucket: %w", err)
	}

	return &BoltRegistry{db: db}, nil
}

// Close closes the underlying database.
func (r *BoltRegistry) Close() error { return r.db.Close() }

// Get retrieves the record for the share asset.
func (r *BoltRegistry) Get(id asset.ID) (*Distribution, error) {
	var d *Distribution
	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDistributions).Get(id[:])
		if data == nil {
			return fmt.Errorf("%w: %s", ErrDistributionDoesNotExist, id)
		}
		var derr error
		d, derr = DeserializeDistribution(data)
		if derr != nil {
			return fmt.Errorf("boltregistry: decode record: %w", derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Insert stores a new record.
func (r *BoltRegistry) Insert(id asset.ID, d *Distribution) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDistributions)
		if b.Get(id[:]) != nil {
			return fmt.Errorf("%w: %s", ErrDistributionExists, id)
		}
		if err := b.Put(id[:], SerializeDistribution(d)); err != nil {
			return fmt.Errorf("boltregistry: put record: %w", err)
		}
		return nil
	})
}

// Update overwrites the record for the share asset.
func (r *BoltRegistry) Update(id asset.ID, d *Distribution) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDistributions)
		if b.Get(id[:]) == nil {
			return fmt.Errorf("%w: %s", ErrDistributionDoesNotExist, id)
		}
		if err := b.Put(id[:], SerializeDistribution(d)); err != nil {
			return fmt.Errorf("boltregistry: update record: %w", err)
		}
		return nil
	})
}
