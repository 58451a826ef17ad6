// Package reward realizes the day-decaying emission schedule for share
// holders using the accumulator-per-share pattern: one global running
// per-share total, plus a per-account debt resynced on every balance
// change.
package reward

import (
	"math/big"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

// Record tracks the emission schedule position
type Record struct {
	// DayEmission is the total emission of the day in progress. It decays
	// by 1% per elapsed whole day and stays at zero once exhausted.
	DayEmission *big.Int
	// PartialEmission is the slice of DayEmission already counted for the
	// in-progress day.
	PartialEmission *big.Int
	// DayStart is the last whole-day boundary in unix milliseconds.
	DayStart int64
}

// Distributor owns the reward accumulator. Mutating entry points are gated
// on the stored owner account.
type Distributor struct {
	owner       domain.Account
	accPerShare *big.Int // scaled by fixedpoint.AccPrecision
	totalReward *big.Int
	rewards     map[domain.Account]*big.Int
	debts       map[domain.Account]*big.Int
	record      Record
}

// New creates a distributor owned by owner. genesisEmission is the first
// day's total emission; genesis is the schedule start in unix milliseconds.
func New(owner domain.Account, genesisEmission *big.Int, genesis int64) *Distributor {
	return &Distributor{
		owner:       owner,
		accPerShare: fixedpoint.Zero(),
		totalReward: fixedpoint.Zero(),
		rewards:     make(map[domain.Account]*big.Int),
		debts:       make(map[domain.Account]*big.Int),
		record: Record{
			DayEmission:     fixedpoint.Clone(genesisEmission),
			PartialEmission: fixedpoint.Zero(),
			DayStart:        genesis,
		},
	}
}

// Owner returns the current owner account
func (d *Distributor) Owner() domain.Account {
	return d.owner
}

// TransferOwnership hands the distributor to a new owner
func (d *Distributor) TransferOwnership(caller, newOwner domain.Account) error {
	if err := d.onlyOwner(caller); err != nil {
		return err
	}
	d.owner = newOwner
	return nil
}

// AccPerShare returns the global accumulator-per-share (AccPrecision scale)
func (d *Distributor) AccPerShare() *big.Int {
	return fixedpoint.Clone(d.accPerShare)
}

// TotalReward returns the total emission distributed so far
func (d *Distributor) TotalReward() *big.Int {
	return fixedpoint.Clone(d.totalReward)
}

// RewardOf returns the account's realized reward
func (d *Distributor) RewardOf(account domain.Account) *big.Int {
	return fixedpoint.Clone(d.rewards[account])
}

// RewardDebtOf returns the account's reward debt (AccPrecision scale base)
func (d *Distributor) RewardDebtOf(account domain.Account) *big.Int {
	return fixedpoint.Clone(d.debts[account])
}

// LastRecord returns a copy of the emission schedule position
func (d *Distributor) LastRecord() Record {
	return Record{
		DayEmission:     fixedpoint.Clone(d.record.DayEmission),
		PartialEmission: fixedpoint.Clone(d.record.PartialEmission),
		DayStart:        d.record.DayStart,
	}
}

// Accrue advances the emission schedule to now and folds the emission
// produced since the last accrual into the accumulator-per-share. It
// returns the emission delta.
//
// With zero supply no emission accrues: the boundary jumps to now and the
// carried partial resets, so the first depositor is not back-paid for the
// idle period. The day emission does not decay across idle periods.
//
// Owner-gated.
func (d *Distributor) Accrue(caller domain.Account, now int64, totalSupply *big.Int) (*big.Int, error) {
	if err := d.onlyOwner(caller); err != nil {
		return nil, err
	}

	if fixedpoint.IsZero(totalSupply) {
		d.record.DayStart = now
		d.record.PartialEmission = fixedpoint.Zero()
		return fixedpoint.Zero(), nil
	}

	if d.record.DayEmission.Sign() == 0 {
		return fixedpoint.Zero(), nil
	}

	elapsed := now - d.record.DayStart
	days := elapsed / domain.DayMillis
	remainder := elapsed - days*domain.DayMillis

	award := fixedpoint.Clone(d.record.DayEmission)
	sum := fixedpoint.Zero()
	for ; days > 0 && award.Sign() > 0; days-- {
		sum.Add(sum, award)
		award = fixedpoint.Pct(award, 99)
	}

	newPartial := fixedpoint.MulDiv(award, fixedpoint.FromInt64(remainder), fixedpoint.FromInt64(domain.DayMillis))
	delta := fixedpoint.Sub(fixedpoint.Add(sum, newPartial), d.record.PartialEmission)

	d.record.DayEmission = award
	d.record.PartialEmission = newPartial
	d.record.DayStart += (elapsed - remainder)

	if delta.Sign() > 0 {
		d.accPerShare.Add(d.accPerShare, fixedpoint.MulDiv(delta, fixedpoint.AccPrecision, totalSupply))
		d.totalReward.Add(d.totalReward, delta)
	}
	return delta, nil
}

// SettleAccount realizes the account's pending share of the accumulator
// using its current balance (the share weight before any balance change):
//
//	realized = balance * acc_per_share - reward_debt
//
// Settling twice with no intervening accrual or balance change realizes
// nothing the second time. Owner-gated.
func (d *Distributor) SettleAccount(caller, account domain.Account, balance *big.Int) error {
	if err := d.onlyOwner(caller); err != nil {
		return err
	}
	entitled := fixedpoint.MulDiv(balance, d.accPerShare, fixedpoint.AccPrecision)
	debt := d.debts[account]
	if debt == nil {
		debt = fixedpoint.Zero()
	}
	realized := fixedpoint.Sub(entitled, debt)
	if realized.Sign() <= 0 {
		return nil
	}
	cur := d.rewards[account]
	if cur == nil {
		cur = fixedpoint.Zero()
	}
	d.rewards[account] = fixedpoint.Add(cur, realized)
	return nil
}

// ResyncDebt resets the account's reward debt to its post-change balance,
// closing the settlement window. Owner-gated.
func (d *Distributor) ResyncDebt(caller, account domain.Account, balance *big.Int) error {
	if err := d.onlyOwner(caller); err != nil {
		return err
	}
	d.debts[account] = fixedpoint.MulDiv(balance, d.accPerShare, fixedpoint.AccPrecision)
	return nil
}

func (d *Distributor) onlyOwner(caller domain.Account) error {
	if caller != d.owner {
		return domain.ErrOnlyOwnerAccess
	}
	return nil
}
