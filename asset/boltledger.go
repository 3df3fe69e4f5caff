package asset

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketBalances = []byte("balances")

// BoltLedger is a bbolt-backed implementation of Ledger. Balances are stored
// in a single bucket keyed assetID||identity with big-endian uint64 values;
// each Mint or Transfer is one bbolt write transaction, so a transfer's debit
// and credit are applied atomically.
type BoltLedger struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Ledger = (*BoltLedger)(nil)

// OpenBoltLedger opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltLedger(dbPath string) (*BoltLedger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("asset: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("asset: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBalances)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("asset: create bucket: %w", err)
	}

	return &BoltLedger{db: db}, nil
}

// Close closes the underlying database.
func (l *BoltLedger) Close() error { return l.db.Close() }

// balanceKey encodes a balance bucket key as assetID||identity.
func balanceKey(id ID, holder Identity) []byte {
	k := make([]byte, IDSize+IdentitySize)
	copy(k, id[:])
	copy(k[IDSize:], holder[:])
	return k
}

func getBalance(b *bbolt.Bucket, key []byte) uint64 {
	v := b.Get(key)
	if len(v) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func putBalance(b *bbolt.Bucket, key []byte, amount uint64) error {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, amount)
	return b.Put(key, v)
}

// Mint creates amount new units of the asset and credits them to the recipient.
func (l *BoltLedger) Mint(id ID, amount uint64, to Identity) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	return l.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBalances)
		key := balanceKey(id, to)
		have := getBalance(b, key)
		if have > math.MaxUint64-amount {
			return fmt.Errorf("%w: holder %s", ErrSupplyOverflow, to)
		}
		if err := putBalance(b, key, have+amount); err != nil {
			return fmt.Errorf("boltledger: put balance: %w", err)
		}
		return nil
	})
}

// Transfer moves amount units of the asset between holders.
func (l *BoltLedger) Transfer(id ID, amount uint64, from, to Identity) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	return l.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBalances)
		fromKey := balanceKey(id, from)
		toKey := balanceKey(id, to)

		fromBal := getBalance(b, fromKey)
		if fromBal < amount {
			return fmt.Errorf("%w: holder %s has %d, need %d", ErrInsufficientBalance, from, fromBal, amount)
		}
		// A self-transfer moves nothing once the balance check passes.
		if from == to {
			return nil
		}
		toBal := getBalance(b, toKey)
		if toBal > math.MaxUint64-amount {
			return fmt.Errorf("%w: holder %s", ErrSupplyOverflow, to)
		}

		if err := putBalance(b, fromKey, fromBal-amount); err != nil {
			return fmt.Errorf("boltledger: put debit: %w", err)
		}
		if err := putBalance(b, toKey, toBal+amount); err != nil {
			return fmt.Errorf("boltledger: put credit: %w", err)
		}
		return nil
	})
}

// BalanceOf returns the holder's balance of the asset.
func (l *BoltLedger) BalanceOf(id ID, holder Identity) (uint64, error) {
	var bal uint64
	err := l.db.View(func(tx *bbolt.Tx) error {
		bal = getBalance(tx.Bucket(bucketBalances), balanceKey(id, holder))
		return nil
	})
	return bal, err
}
