// Package swap abstracts the external trading venue the rebase
// controller trades against.
package swap

import (
	"math/big"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

// Venue quotes and executes swaps between the synthetic and collateral
// tokens. tokenIn names the asset being sold; the output is always the
// other asset. Quote returns the output for a given input without
// moving funds; Swap executes and returns the realized output.
//
//go:generate mockgen -source=venue.go -destination=../mocks/venue.go -package=mocks -mock_names=Venue=MockVenue
type Venue interface {
	Quote(tokenIn domain.TokenID, amountIn *big.Int) (*big.Int, error)
	Swap(caller domain.Account, tokenIn domain.TokenID, amountIn *big.Int) (*big.Int, error)
}

// ConstantProductPool is a minimal x*y=k pool over the synthetic and
// collateral reserves. It exists so rebases can run against a local
// venue in tests and single-node deployments.
type ConstantProductPool struct {
	owner             domain.Account
	syntheticReserve  *big.Int
	collateralReserve *big.Int
	// fee in basis points taken from the input amount
	feeBps int64
}

// NewConstantProductPool seeds a pool with the given reserves.
func NewConstantProductPool(owner domain.Account, syntheticReserve, collateralReserve *big.Int, feeBps int64) *ConstantProductPool {
	return &ConstantProductPool{
		owner:             owner,
		syntheticReserve:  fixedpoint.Clone(syntheticReserve),
		collateralReserve: fixedpoint.Clone(collateralReserve),
		feeBps:            feeBps,
	}
}

// Quote computes the output for amountIn against the current reserves
// without executing.
func (p *ConstantProductPool) Quote(tokenIn domain.TokenID, amountIn *big.Int) (*big.Int, error) {
	out, _, err := p.amountOut(tokenIn, amountIn)
	return out, err
}

// Swap executes the trade and shifts the reserves.
func (p *ConstantProductPool) Swap(caller domain.Account, tokenIn domain.TokenID, amountIn *big.Int) (*big.Int, error) {
	out, reserveIn, err := p.amountOut(tokenIn, amountIn)
	if err != nil {
		return nil, err
	}
	if tokenIn == domain.TokenSynthetic {
		p.syntheticReserve = fixedpoint.Add(reserveIn, amountIn)
		p.collateralReserve = fixedpoint.Sub(p.collateralReserve, out)
	} else {
		p.collateralReserve = fixedpoint.Add(reserveIn, amountIn)
		p.syntheticReserve = fixedpoint.Sub(p.syntheticReserve, out)
	}
	return out, nil
}

// SyntheticReserve returns the current synthetic side of the pool.
func (p *ConstantProductPool) SyntheticReserve() *big.Int {
	return fixedpoint.Clone(p.syntheticReserve)
}

// CollateralReserve returns the current collateral side of the pool.
func (p *ConstantProductPool) CollateralReserve() *big.Int {
	return fixedpoint.Clone(p.collateralReserve)
}

// amountOut applies the fee then the constant-product formula:
// out = reserveOut * inAfterFee / (reserveIn + inAfterFee)
func (p *ConstantProductPool) amountOut(tokenIn domain.TokenID, amountIn *big.Int) (out, reserveIn *big.Int, err error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}
	reserveIn, reserveOut := p.syntheticReserve, p.collateralReserve
	if tokenIn == domain.TokenCollateral {
		reserveIn, reserveOut = p.collateralReserve, p.syntheticReserve
	}
	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, nil, domain.ErrInsufficientSupply
	}
	inAfterFee := fixedpoint.MulDiv(amountIn, big.NewInt(10_000-p.feeBps), big.NewInt(10_000))
	denom := fixedpoint.Add(reserveIn, inAfterFee)
	return fixedpoint.MulDiv(reserveOut, inAfterFee, denom), reserveIn, nil
}
