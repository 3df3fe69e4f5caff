package distributor

import (
	"errors"
	"fmt"
	"math"

	"github.com/fracnftorg/libfracnft-go/asset"
	"github.com/fracnftorg/libfracnft-go/nft"
)

// Distributor is the distribution state machine. It owns no asset state
// itself: records live in the Registry, balances in the Ledger, and the
// custodied NFT in the Custody. Each operation validates every precondition,
// including balance sufficiency, before issuing any transfer, so a failing
// call leaves no partial state.
//
// Calls against the same share asset must be serialized by the caller; the
// engine checks invariants at entry but performs no internal locking across
// registry and ledger.
type Distributor struct {
	registry Registry
	ledger   asset.Ledger
	custody  nft.Custody
	self     asset.Identity // the contract's own balance holder identity
}

// New creates a Distributor operating under the given contract identity.
func New(registry Registry, ledger asset.Ledger, custody nft.Custody, self asset.Identity) *Distributor {
	return &Distributor{
		registry: registry,
		ledger:   ledger,
		custody:  custody,
		self:     self,
	}
}

// Self returns the contract's own balance holder identity.
func (d *Distributor) Self() asset.Identity { return d.self }

// CreateParams are the inputs to Create.
type CreateParams struct {
	PaymentAsset asset.ID        // asset accepted for purchase/buyback/sell
	ShareAsset   asset.ID        // identifier of the share asset to mint
	NFT          nft.TokenRef    // token to take into custody
	ReservePrice uint64          // cap on total collectible payment; 0 = unlimited
	Owner        *asset.Identity // proceeds recipient; nil defaults to caller
	TokenPrice   uint64          // payment units per share unit
	TokenSupply  uint64          // share units to mint
}

// Create starts a new distribution: takes the NFT into custody, mints the
// full token supply of the share asset to the contract, and records the
// distribution in StateSelling. The caller must have approved the contract
// for the NFT beforehand.
//
// Returns ErrInvalidState if a distribution already exists for the share
// asset.
func (d *Distributor) Create(caller asset.Identity, p CreateParams) error {
	if p.TokenSupply == 0 {
		return ErrZeroSupply
	}
	if p.TokenPrice == 0 {
		return ErrZeroPrice
	}

	if _, err := d.registry.Get(p.ShareAsset); err == nil {
		return fmt.Errorf("%w: distribution already exists for %s", ErrInvalidState, p.ShareAsset)
	} else if !errors.Is(err, ErrDistributionDoesNotExist) {
		return err
	}

	owner := caller
	if p.Owner != nil {
		owner = *p.Owner
	}

	// The mint must be known to succeed before the NFT moves, or a mint
	// failure would strand the token in custody with no record. Check the
	// contract's existing share balance for headroom up front.
	held, err := d.ledger.BalanceOf(p.ShareAsset, d.self)
	if err != nil {
		return err
	}
	if held > math.MaxUint64-p.TokenSupply {
		return fmt.Errorf("%w: minting %d to a balance of %d", asset.ErrSupplyOverflow, p.TokenSupply, held)
	}

	if err := d.custody.TransferToContract(p.NFT, d.self); err != nil {
		return err
	}
	if err := d.ledger.Mint(p.ShareAsset, p.TokenSupply, d.self); err != nil {
		return err
	}

	return d.registry.Insert(p.ShareAsset, &Distribution{
		NFT:               p.NFT,
		PaymentAsset:      p.PaymentAsset,
		ReservePrice:      p.ReservePrice,
		Owner:             owner,
		TokenPrice:        p.TokenPrice,
		TokenSupply:       p.TokenSupply,
		ReservesCollected: 0,
		State:             StateSelling,
	})
}

// Purchase buys amount share units at the distribution's token price. The
// attached payment must be exactly amount x TokenPrice of the payment asset.
// Shares move from the contract to the caller; the payment is forwarded to
// the owner and counted into ReservesCollected.
func (d *Distributor) Purchase(caller asset.Identity, shareAsset asset.ID, amount uint64, payment AttachedTransfer) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	rec, err := d.registry.Get(shareAsset)
	if err != nil {
		return err
	}
	if rec.State != StateSelling {
		return fmt.Errorf("%w: purchase requires %s, distribution is %s", ErrInvalidState, StateSelling, rec.State)
	}

	cost, err := Cost(amount, rec.TokenPrice)
	if err != nil {
		return err
	}
	if err := ValidateTransfer(payment, rec.PaymentAsset, cost); err != nil {
		return err
	}
	if rec.ReservePrice != 0 {
		if cost > rec.ReservePrice-rec.ReservesCollected {
			return fmt.Errorf("%w: collected %d + payment %d > reserve %d",
				ErrReserveExceeded, rec.ReservesCollected, cost, rec.ReservePrice)
		}
	}

	held, err := d.ledger.BalanceOf(shareAsset, d.self)
	if err != nil {
		return err
	}
	if held < amount {
		return fmt.Errorf("%w: %d units remain, want %d", ErrSupplyExhausted, held, amount)
	}
	funds, err := d.ledger.BalanceOf(rec.PaymentAsset, caller)
	if err != nil {
		return err
	}
	if funds < cost {
		return fmt.Errorf("%w: caller has %d, need %d", asset.ErrInsufficientBalance, funds, cost)
	}

	if err := d.ledger.Transfer(shareAsset, amount, d.self, caller); err != nil {
		return err
	}
	// Proceeds go straight to the owner; the contract retains nothing while
	// selling.
	if err := d.ledger.Transfer(rec.PaymentAsset, cost, caller, rec.Owner); err != nil {
		return err
	}

	rec.ReservesCollected += cost
	return d.registry.Update(shareAsset, rec)
}

// Buyback repurchases all externally held shares. Only the owner may call
// it. The attached payment must be exactly the outstanding share units x
// TokenPrice of the payment asset; the deposit stays on the contract's
// balance, earmarked for redemptions. The NFT returns to the owner and the
// distribution moves to StateAcceptingReturns. Terminal.
func (d *Distributor) Buyback(caller asset.Identity, shareAsset asset.ID, payment AttachedTransfer) error {
	rec, err := d.registry.Get(shareAsset)
	if err != nil {
		return err
	}
	if rec.State != StateSelling {
		return fmt.Errorf("%w: buyback requires %s, distribution is %s", ErrInvalidState, StateSelling, rec.State)
	}
	if caller != rec.Owner {
		return fmt.Errorf("%w: %s, owner is %s", ErrUnauthorized, caller, rec.Owner)
	}

	held, err := d.ledger.BalanceOf(shareAsset, d.self)
	if err != nil {
		return err
	}
	outstanding := rec.TokenSupply - held
	required, err := Cost(outstanding, rec.TokenPrice)
	if err != nil {
		return err
	}
	if err := ValidateTransfer(payment, rec.PaymentAsset, required); err != nil {
		return err
	}
	if required > 0 {
		funds, err := d.ledger.BalanceOf(rec.PaymentAsset, caller)
		if err != nil {
			return err
		}
		if funds < required {
			return fmt.Errorf("%w: caller has %d, need %d", asset.ErrInsufficientBalance, funds, required)
		}
		if err := d.ledger.Transfer(rec.PaymentAsset, required, caller, d.self); err != nil {
			return err
		}
	}
	if err := d.custody.TransferToOwner(rec.NFT, d.self, rec.Owner); err != nil {
		return err
	}

	rec.State = StateAcceptingReturns
	return d.registry.Update(shareAsset, rec)
}

// Sell redeems amount share units for the payment asset after buyback. The
// attached transfer must carry exactly amount units of the share asset; the
// contract retains the returned shares and pays out amount x TokenPrice.
// Partial redemptions are allowed and additive.
func (d *Distributor) Sell(caller asset.Identity, shareAsset asset.ID, amount uint64, attached AttachedTransfer) error {
	if amount == 0 {
		return ErrZeroAmount
	}

	rec, err := d.registry.Get(shareAsset)
	if err != nil {
		return err
	}
	if rec.State != StateAcceptingReturns {
		return fmt.Errorf("%w: sell requires %s, distribution is %s", ErrInvalidState, StateAcceptingReturns, rec.State)
	}
	if err := ValidateTransfer(attached, shareAsset, amount); err != nil {
		return err
	}

	refund, err := Cost(amount, rec.TokenPrice)
	if err != nil {
		return err
	}

	shares, err := d.ledger.BalanceOf(shareAsset, caller)
	if err != nil {
		return err
	}
	if shares < amount {
		return fmt.Errorf("%w: caller has %d share units, need %d", asset.ErrInsufficientBalance, shares, amount)
	}
	deposit, err := d.ledger.BalanceOf(rec.PaymentAsset, d.self)
	if err != nil {
		return err
	}
	if deposit < refund {
		return fmt.Errorf("%w: contract holds %d, refund needs %d", asset.ErrInsufficientBalance, deposit, refund)
	}

	if err := d.ledger.Transfer(shareAsset, amount, caller, d.self); err != nil {
		return err
	}
	return d.ledger.Transfer(rec.PaymentAsset, refund, d.self, caller)
}
