// Package oracle supplies the two scalar prices the rebase controller
// depends on. A zero price means "unavailable" and aborts the caller.
package oracle

import (
	"math/big"

	"github.com/stableflow/reserve-engine/internal/adapter"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

// PriceOracle is the read boundary the controller uses. Prices are
// fixed-point with 8 decimals.
//
//go:generate mockgen -source=oracle.go -destination=../mocks/oracle.go -package=mocks -mock_names=PriceOracle=MockPriceOracle
type PriceOracle interface {
	CollateralPrice() *big.Int
	SyntheticPrice() *big.Int
}

// MemoryOracle is an owner-updated in-memory oracle
type MemoryOracle struct {
	owner           domain.Account
	collateralPrice *big.Int
	syntheticPrice  *big.Int
	lastUpdate      int64
	clock           adapter.Clock
}

// NewMemoryOracle creates an oracle with no prices yet
func NewMemoryOracle(owner domain.Account, clock adapter.Clock) *MemoryOracle {
	return &MemoryOracle{
		owner:           owner,
		collateralPrice: fixedpoint.Zero(),
		syntheticPrice:  fixedpoint.Zero(),
		clock:           clock,
	}
}

// Owner returns the current owner account
func (o *MemoryOracle) Owner() domain.Account {
	return o.owner
}

// TransferOwnership hands the oracle to a new owner
func (o *MemoryOracle) TransferOwnership(caller, newOwner domain.Account) error {
	if err := o.onlyOwner(caller); err != nil {
		return err
	}
	o.owner = newOwner
	return nil
}

// Update overwrites both prices. Owner-gated.
func (o *MemoryOracle) Update(caller domain.Account, collateralPrice, syntheticPrice *big.Int) error {
	if err := o.onlyOwner(caller); err != nil {
		return err
	}
	if collateralPrice.Sign() < 0 || syntheticPrice.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	o.collateralPrice = fixedpoint.Clone(collateralPrice)
	o.syntheticPrice = fixedpoint.Clone(syntheticPrice)
	o.lastUpdate = o.clock.NowMillis()
	return nil
}

// CollateralPrice returns the last collateral price, zero when never set
func (o *MemoryOracle) CollateralPrice() *big.Int {
	return fixedpoint.Clone(o.collateralPrice)
}

// SyntheticPrice returns the last synthetic price, zero when never set
func (o *MemoryOracle) SyntheticPrice() *big.Int {
	return fixedpoint.Clone(o.syntheticPrice)
}

// LastUpdate returns the unix-millisecond time of the last price update
func (o *MemoryOracle) LastUpdate() int64 {
	return o.lastUpdate
}

func (o *MemoryOracle) onlyOwner(caller domain.Account) error {
	if caller != o.owner {
		return domain.ErrOnlyOwnerAccess
	}
	return nil
}
