// Package ledger implements the fungible balance store for the risk-bearing
// share token. Every balance-changing operation settles the coin-day
// accumulator and the reward distributor for the touched accounts before
// the balance (the share weight) moves, then resyncs reward debt.
package ledger

import (
	"fmt"
	"math/big"

	"github.com/stableflow/reserve-engine/internal/adapter"
	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/reward"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

// LockInfo freezes part of an account's balance until an epoch. The
// transferable amount is balance minus the locked amount.
type LockInfo struct {
	UntilEpoch   int64
	LockedAmount *big.Int
}

// Ledger owns balances, allowances and locks for the share token. The
// owner account gates mint, burn and lock updates, and doubles as the
// identity the ledger presents to the accumulators and the synthetic token.
type Ledger struct {
	owner domain.Account
	// authority is the fixed identity presented to the accumulators and
	// the synthetic token; unlike owner it does not move with
	// TransferOwnership.
	authority domain.Account
	total     *big.Int
	balances map[domain.Account]*big.Int
	locks    map[domain.Account]LockInfo
	// allowances is keyed by (owner, spender)
	allowances map[[2]domain.Account]*big.Int

	coinday   *coinday.Accumulator
	rewards   *reward.Distributor
	synthetic synthetic.Token
	clock     adapter.Clock
	events    *domain.EventLog
}

// New wires a ledger to its accumulators and the synthetic token. The
// owner account must also own the accumulators and the synthetic token so
// cross-component settlement calls are authorized.
func New(
	owner domain.Account,
	cd *coinday.Accumulator,
	rw *reward.Distributor,
	syn synthetic.Token,
	clock adapter.Clock,
	events *domain.EventLog,
) *Ledger {
	return &Ledger{
		owner:      owner,
		authority:  owner,
		total:      fixedpoint.Zero(),
		balances:   make(map[domain.Account]*big.Int),
		locks:      make(map[domain.Account]LockInfo),
		allowances: make(map[[2]domain.Account]*big.Int),
		coinday:    cd,
		rewards:    rw,
		synthetic:  syn,
		clock:      clock,
		events:     events,
	}
}

// Name returns the token name
func (l *Ledger) Name() string { return domain.ShareTokenName }

// Symbol returns the token ticker
func (l *Ledger) Symbol() string { return domain.ShareTokenSymbol }

// Decimals returns the token decimal count
func (l *Ledger) Decimals() uint8 { return domain.ShareTokenDecimals }

// Owner returns the current owner account
func (l *Ledger) Owner() domain.Account { return l.owner }

// TotalSupply returns the share token supply
func (l *Ledger) TotalSupply() *big.Int {
	return fixedpoint.Clone(l.total)
}

// BalanceOf returns the account balance, zero for unknown accounts
func (l *Ledger) BalanceOf(account domain.Account) *big.Int {
	return fixedpoint.Clone(l.balances[account])
}

// LockOf returns the account's lock info
func (l *Ledger) LockOf(account domain.Account) LockInfo {
	info, ok := l.locks[account]
	if !ok {
		return LockInfo{LockedAmount: fixedpoint.Zero()}
	}
	return LockInfo{UntilEpoch: info.UntilEpoch, LockedAmount: fixedpoint.Clone(info.LockedAmount)}
}

// FreeBalanceOf returns the transferable part of the account balance
func (l *Ledger) FreeBalanceOf(account domain.Account) *big.Int {
	return l.freeBalance(account, l.BalanceOf(account))
}

// Allowance returns how much spender may still withdraw from owner
func (l *Ledger) Allowance(owner, spender domain.Account) *big.Int {
	return fixedpoint.Clone(l.allowances[[2]domain.Account{owner, spender}])
}

// TransferOwnership hands the ledger to a new owner
func (l *Ledger) TransferOwnership(caller, newOwner domain.Account) error {
	if err := l.onlyOwner(caller); err != nil {
		return err
	}
	l.owner = newOwner
	return nil
}

// SetLock overwrites the account's lock info. Owner-gated.
func (l *Ledger) SetLock(caller, account domain.Account, info LockInfo) error {
	if err := l.onlyOwner(caller); err != nil {
		return err
	}
	l.locks[account] = LockInfo{UntilEpoch: info.UntilEpoch, LockedAmount: fixedpoint.Clone(info.LockedAmount)}
	return nil
}

// Approve lets spender withdraw up to value from the caller's account.
// Calling again overwrites the current allowance.
func (l *Ledger) Approve(caller, spender domain.Account, value *big.Int) error {
	if value.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	l.allowances[[2]domain.Account{caller, spender}] = fixedpoint.Clone(value)
	l.events.Emit(domain.Event{
		Type:      domain.EventTypeApproval,
		From:      domain.AccountRef(caller),
		To:        domain.AccountRef(spender),
		Value:     domain.AmountStr(value),
		Timestamp: l.clock.NowMillis(),
	})
	return nil
}

// Transfer moves value from the caller's account to account to
func (l *Ledger) Transfer(caller, to domain.Account, value *big.Int) error {
	return l.transferFromTo(caller, to, value)
}

// TransferFrom moves value from from to to on behalf of the caller,
// debiting the caller's allowance.
func (l *Ledger) TransferFrom(caller, from, to domain.Account, value *big.Int) error {
	key := [2]domain.Account{from, caller}
	allowance := l.allowances[key]
	if allowance == nil || allowance.Cmp(value) < 0 {
		return domain.ErrInsufficientAllowance
	}
	if err := l.transferFromTo(from, to, value); err != nil {
		return err
	}
	l.allowances[key] = fixedpoint.Sub(allowance, value)
	return nil
}

// Mint credits amount of new share tokens to account to. Owner-gated.
func (l *Ledger) Mint(caller, to domain.Account, amount *big.Int) error {
	if err := l.onlyOwner(caller); err != nil {
		return err
	}
	if !fixedpoint.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}

	now := l.clock.NowMillis()
	toBal := l.BalanceOf(to)

	pending, nextIndex := l.coinday.PendingAwards(to, toBal)
	if err := l.mintAward(to, pending); err != nil {
		return err
	}

	// internal settlement cannot fail once the external mint went through
	l.settleReward(now, to, toBal)
	must(l.coinday.SettleIncrease(l.authority, to, toBal, now, nextIndex))

	l.balances[to] = fixedpoint.Add(toBal, amount)
	must(l.rewards.ResyncDebt(l.authority, to, l.balances[to]))

	l.settleTotalCoinday(now, fixedpoint.Zero())
	l.total.Add(l.total, amount)

	l.events.Emit(domain.Event{
		Type:      domain.EventTypeMint,
		To:        domain.AccountRef(to),
		Value:     domain.AmountStr(amount),
		Timestamp: now,
	})
	return nil
}

// Burn destroys amount of share tokens held by account from. Owner-gated.
func (l *Ledger) Burn(caller, from domain.Account, amount *big.Int) error {
	if err := l.onlyOwner(caller); err != nil {
		return err
	}
	if !fixedpoint.IsPositive(amount) {
		return domain.ErrInvalidAmount
	}
	if l.total.Cmp(amount) < 0 {
		return domain.ErrInsufficientSupply
	}

	fromBal := l.BalanceOf(from)
	if l.freeBalance(from, fromBal).Cmp(amount) < 0 {
		return domain.ErrInsufficientFreeBalance
	}

	now := l.clock.NowMillis()
	pending, nextIndex := l.coinday.PendingAwards(from, fromBal)
	if err := l.mintAward(from, pending); err != nil {
		return err
	}

	l.settleReward(now, from, fromBal)
	decrease, err := l.coinday.SettleDecrease(l.authority, from, fromBal, amount, now, nextIndex)
	must(err)

	l.balances[from] = fixedpoint.Sub(fromBal, amount)
	must(l.rewards.ResyncDebt(l.authority, from, l.balances[from]))

	l.settleTotalCoinday(now, decrease)
	l.total.Sub(l.total, amount)

	l.events.Emit(domain.Event{
		Type:      domain.EventTypeBurn,
		From:      domain.AccountRef(from),
		Value:     domain.AmountStr(amount),
		Timestamp: now,
	})
	return nil
}

func (l *Ledger) transferFromTo(from, to domain.Account, value *big.Int) error {
	if value.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	fromBal := l.BalanceOf(from)
	if l.freeBalance(from, fromBal).Cmp(value) < 0 {
		return domain.ErrInsufficientFreeBalance
	}

	now := l.clock.NowMillis()
	self := from == to

	// compute the award claims before any mutation so a failed external
	// mint aborts the operation with the ledger untouched; a self transfer
	// carries exactly one claim
	pendingFrom, nextFrom := l.coinday.PendingAwards(from, fromBal)
	if err := l.mintAward(from, pendingFrom); err != nil {
		return err
	}
	nextTo := nextFrom
	if !self {
		pendingTo, next := l.coinday.PendingAwards(to, l.BalanceOf(to))
		nextTo = next
		if err := l.mintAward(to, pendingTo); err != nil {
			return err
		}
	}

	l.settleReward(now, from, fromBal)

	decrease, err := l.coinday.SettleDecrease(l.authority, from, fromBal, value, now, nextFrom)
	must(err)
	l.balances[from] = fixedpoint.Sub(fromBal, value)

	// the credit side reads its balance after the debit so a self transfer
	// nets out instead of re-crediting the pre-debit balance
	toBal := l.BalanceOf(to)
	if !self {
		must(l.rewards.SettleAccount(l.authority, to, toBal))
	}
	must(l.coinday.SettleIncrease(l.authority, to, toBal, now, nextTo))
	l.balances[to] = fixedpoint.Add(toBal, value)

	must(l.rewards.ResyncDebt(l.authority, from, l.balances[from]))
	must(l.rewards.ResyncDebt(l.authority, to, l.balances[to]))

	l.settleTotalCoinday(now, decrease)

	l.events.Emit(domain.Event{
		Type:      domain.EventTypeTransfer,
		From:      domain.AccountRef(from),
		To:        domain.AccountRef(to),
		Value:     domain.AmountStr(value),
		Timestamp: now,
	})
	return nil
}

// settleReward accrues emission to now and realizes the pending share of
// the given account at its pre-change balance.
func (l *Ledger) settleReward(now int64, account domain.Account, balance *big.Int) {
	_, err := l.rewards.Accrue(l.authority, now, l.total)
	must(err)
	must(l.rewards.SettleAccount(l.authority, account, balance))
}

// settleTotalCoinday projects the global coin-day integral to now at the
// pre-operation supply and subtracts coin-days removed by a debit.
func (l *Ledger) settleTotalCoinday(now int64, decrease *big.Int) {
	total := l.coinday.TotalCoinday()
	grown := fixedpoint.Add(total.Amount, fixedpoint.MulInt64(l.total, now-total.Timestamp))
	must(l.coinday.UpdateTotalCoinday(l.authority, fixedpoint.Sub(grown, decrease), now))
}

// mintAward pays out a claimed award share through the synthetic token
func (l *Ledger) mintAward(account domain.Account, pending *big.Int) error {
	if !fixedpoint.IsPositive(pending) {
		return nil
	}
	if err := l.synthetic.Mint(l.authority, account, pending); err != nil {
		return fmt.Errorf("award payout failed: %w", err)
	}
	return nil
}

func (l *Ledger) freeBalance(account domain.Account, balance *big.Int) *big.Int {
	return fixedpoint.Sub(balance, l.LockOf(account).LockedAmount)
}

func (l *Ledger) onlyOwner(caller domain.Account) error {
	if caller != l.owner {
		return domain.ErrOnlyOwnerAccess
	}
	return nil
}

// must guards cross-component calls that are authorized by construction;
// a failure here means the wiring is broken, not a caller mistake.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
