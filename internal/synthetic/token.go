// Package synthetic defines the call boundary to the pegged synthetic token
// and provides an in-memory implementation for single-process deployments
// and tests.
package synthetic

import (
	"math/big"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

// Token is the owner-gated mint/burn surface the engine requires from the
// synthetic token.
//
//go:generate mockgen -source=token.go -destination=../mocks/synthetic.go -package=mocks -mock_names=Token=MockSyntheticToken
type Token interface {
	Mint(caller, account domain.Account, amount *big.Int) error
	Burn(caller, account domain.Account, amount *big.Int) error
	BalanceOf(account domain.Account) *big.Int
	TotalSupply() *big.Int
	Decimals() uint8
}

// MemoryToken is a minimal fungible token backing the Token interface
type MemoryToken struct {
	owner    domain.Account
	decimals uint8
	total    *big.Int
	balances map[domain.Account]*big.Int
}

// NewMemoryToken creates an empty token owned by owner
func NewMemoryToken(owner domain.Account, decimals uint8) *MemoryToken {
	return &MemoryToken{
		owner:    owner,
		decimals: decimals,
		total:    fixedpoint.Zero(),
		balances: make(map[domain.Account]*big.Int),
	}
}

// Owner returns the current owner account
func (t *MemoryToken) Owner() domain.Account {
	return t.owner
}

// TransferOwnership hands the token to a new owner
func (t *MemoryToken) TransferOwnership(caller, newOwner domain.Account) error {
	if err := t.onlyOwner(caller); err != nil {
		return err
	}
	t.owner = newOwner
	return nil
}

// BalanceOf returns the account balance
func (t *MemoryToken) BalanceOf(account domain.Account) *big.Int {
	return fixedpoint.Clone(t.balances[account])
}

// TotalSupply returns the total token supply
func (t *MemoryToken) TotalSupply() *big.Int {
	return fixedpoint.Clone(t.total)
}

// Decimals returns the fixed decimal count
func (t *MemoryToken) Decimals() uint8 {
	return t.decimals
}

// Mint credits amount to account. Owner-gated.
func (t *MemoryToken) Mint(caller, account domain.Account, amount *big.Int) error {
	if err := t.onlyOwner(caller); err != nil {
		return err
	}
	if !fixedpoint.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}
	cur := t.balances[account]
	if cur == nil {
		cur = fixedpoint.Zero()
	}
	t.balances[account] = fixedpoint.Add(cur, amount)
	t.total.Add(t.total, amount)
	return nil
}

// Burn debits amount from account. Owner-gated.
func (t *MemoryToken) Burn(caller, account domain.Account, amount *big.Int) error {
	if err := t.onlyOwner(caller); err != nil {
		return err
	}
	if !fixedpoint.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}
	cur := t.balances[account]
	if cur == nil || cur.Cmp(amount) < 0 {
		return domain.ErrInsufficientSupply
	}
	t.balances[account] = fixedpoint.Sub(cur, amount)
	t.total.Sub(t.total, amount)
	return nil
}

func (t *MemoryToken) onlyOwner(caller domain.Account) error {
	if caller != t.owner {
		return domain.ErrOnlyOwnerAccess
	}
	return nil
}
