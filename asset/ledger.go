package asset

import (
	"fmt"
	"math"
	"sync"
)

// Ledger tracks per-holder balances of fungible assets. The engine uses two
// logical instances of this contract: one for the payment asset and one for
// the minted share asset, though a single Ledger may back both.
type Ledger interface {
	// Mint creates amount new units of the asset and credits them to the
	// recipient.
	Mint(id ID, amount uint64, to Identity) error

	// Transfer moves amount units of the asset between holders. The debit
	// and credit apply together or not at all.
	Transfer(id ID, amount uint64, from, to Identity) error

	// BalanceOf returns the holder's balance of the asset. Unknown assets
	// and holders have balance zero.
	BalanceOf(id ID, holder Identity) (uint64, error)
}

// MemLedger is an in-memory implementation of Ledger for testing.
type MemLedger struct {
	mu       sync.RWMutex
	balances map[ID]map[Identity]uint64
}

// Compile-time interface check.
var _ Ledger = (*MemLedger)(nil)

// NewMemLedger creates a new empty in-memory ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{balances: make(map[ID]map[Identity]uint64)}
}

// Mint creates amount new units of the asset and credits them to the recipient.
func (l *MemLedger) Mint(id ID, amount uint64, to Identity) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	holders := l.balances[id]
	if holders == nil {
		holders = make(map[Identity]uint64)
		l.balances[id] = holders
	}
	if holders[to] > math.MaxUint64-amount {
		return fmt.Errorf("%w: holder %s", ErrSupplyOverflow, to)
	}
	holders[to] += amount
	return nil
}

// Transfer moves amount units of the asset between holders.
func (l *MemLedger) Transfer(id ID, amount uint64, from, to Identity) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	holders := l.balances[id]
	if holders[from] < amount {
		return fmt.Errorf("%w: holder %s has %d, need %d", ErrInsufficientBalance, from, holders[from], amount)
	}
	// A self-transfer moves nothing once the balance check passes.
	if from == to {
		return nil
	}
	if holders[to] > math.MaxUint64-amount {
		return fmt.Errorf("%w: holder %s", ErrSupplyOverflow, to)
	}
	holders[from] -= amount
	holders[to] += amount
	return nil
}

// BalanceOf returns the holder's balance of the asset.
func (l *MemLedger) BalanceOf(id ID, holder Identity) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[id][holder], nil
}
