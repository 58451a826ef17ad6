// Package coinday tracks time-weighted balances ("coin-days") per account
// and globally, plus an append-only log of award events that apportions
// newly issued synthetic tokens to share holders pro rata by coin-day.
package coinday

import (
	"math/big"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
)

// MaxAwardsPerClaim bounds how many award entries one claim call may walk.
// A claim that hits the bound leaves the account cursor at the last
// processed entry; the next claim resumes from there.
const MaxAwardsPerClaim = 50

// Info is the per-account coin-day state
type Info struct {
	// Amount is the accumulated coin-day integral at Timestamp
	Amount *big.Int
	// Timestamp is the last settlement time in unix milliseconds
	Timestamp int64
	// NextAwardIndex is the first award entry not yet claimed
	NextAwardIndex int
}

// AwardEntry is one era of the append-only award log. Entries are immutable
// once appended.
type AwardEntry struct {
	Minted       *big.Int
	TotalCoinday *big.Int
	Timestamp    int64
}

// Total is the global coin-day state
type Total struct {
	Amount    *big.Int
	Timestamp int64
}

// Accumulator owns the coin-day mappings. All mutating entry points are
// gated on the stored owner account.
type Accumulator struct {
	owner  domain.Account
	infos  map[domain.Account]*Info
	awards []AwardEntry
	total  Total
}

// New creates an accumulator owned by owner, with the global clock starting
// at genesis (unix milliseconds).
func New(owner domain.Account, genesis int64) *Accumulator {
	return &Accumulator{
		owner: owner,
		infos: make(map[domain.Account]*Info),
		total: Total{Amount: fixedpoint.Zero(), Timestamp: genesis},
	}
}

// Owner returns the current owner account
func (a *Accumulator) Owner() domain.Account {
	return a.owner
}

// TransferOwnership hands the accumulator to a new owner
func (a *Accumulator) TransferOwnership(caller, newOwner domain.Account) error {
	if err := a.onlyOwner(caller); err != nil {
		return err
	}
	a.owner = newOwner
	return nil
}

// CoindayOf returns a copy of the account's coin-day state
func (a *Accumulator) CoindayOf(account domain.Account) Info {
	info := a.info(account)
	return Info{
		Amount:         fixedpoint.Clone(info.Amount),
		Timestamp:      info.Timestamp,
		NextAwardIndex: info.NextAwardIndex,
	}
}

// TotalCoinday returns a copy of the global coin-day state
func (a *Accumulator) TotalCoinday() Total {
	return Total{Amount: fixedpoint.Clone(a.total.Amount), Timestamp: a.total.Timestamp}
}

// AwardCount returns the length of the award log
func (a *Accumulator) AwardCount() int {
	return len(a.awards)
}

// Award returns a copy of the award entry at index i
func (a *Accumulator) Award(i int) AwardEntry {
	e := a.awards[i]
	return AwardEntry{
		Minted:       fixedpoint.Clone(e.Minted),
		TotalCoinday: fixedpoint.Clone(e.TotalCoinday),
		Timestamp:    e.Timestamp,
	}
}

// PendingAwards computes the account's unclaimed share of the award log
// without mutating state. It walks at most MaxAwardsPerClaim entries from
// the account's cursor; each entry i contributes
//
//	coinday_at(i) * minted_i / total_coinday_i
//
// where coinday_at(i) projects the stored coin-day state to the entry's
// timestamp with the linear balance-time integral. Floor division. The
// returned index is where the cursor should land after the claim commits.
func (a *Accumulator) PendingAwards(account domain.Account, balance *big.Int) (*big.Int, int) {
	info := a.info(account)
	start := info.NextAwardIndex
	end := len(a.awards)
	if end-start > MaxAwardsPerClaim {
		end = start + MaxAwardsPerClaim
	}

	pending := fixedpoint.Zero()
	for i := start; i < end; i++ {
		entry := a.awards[i]
		if entry.TotalCoinday.Sign() == 0 {
			continue
		}
		elapsed := entry.Timestamp - info.Timestamp
		coindayAt := fixedpoint.Add(info.Amount, fixedpoint.MulInt64(balance, elapsed))
		pending.Add(pending, fixedpoint.MulDiv(coindayAt, entry.Minted, entry.TotalCoinday))
	}
	return pending, end
}

// SettleIncrease advances the account's coin-day integral to now using the
// balance held before the credit, and moves the award cursor to nextIndex.
// Owner-gated.
func (a *Accumulator) SettleIncrease(caller, account domain.Account, balance *big.Int, now int64, nextIndex int) error {
	if err := a.onlyOwner(caller); err != nil {
		return err
	}
	info := a.info(account)
	elapsed := now - info.Timestamp
	info.Amount.Add(info.Amount, fixedpoint.MulInt64(balance, elapsed))
	info.Timestamp = now
	info.NextAwardIndex = nextIndex
	return nil
}

// SettleDecrease advances the account's coin-day integral to now and then
// removes coin-days in proportion to the fraction of balance withdrawn:
// floor(current_coinday * value / balance). It returns the amount removed
// so the caller can deduct it from the global total. Owner-gated.
func (a *Accumulator) SettleDecrease(caller, account domain.Account, balance, value *big.Int, now int64, nextIndex int) (*big.Int, error) {
	if err := a.onlyOwner(caller); err != nil {
		return nil, err
	}
	info := a.info(account)
	elapsed := now - info.Timestamp
	current := fixedpoint.Add(info.Amount, fixedpoint.MulInt64(balance, elapsed))

	decrease := fixedpoint.Zero()
	if balance.Sign() > 0 {
		decrease = fixedpoint.MulDiv(current, value, balance)
	}
	info.Amount = fixedpoint.Sub(current, decrease)
	info.Timestamp = now
	info.NextAwardIndex = nextIndex
	return decrease, nil
}

// AppendAward appends a new era to the award log. Owner-gated, append-only.
func (a *Accumulator) AppendAward(caller domain.Account, minted, totalSnapshot *big.Int, now int64) error {
	if err := a.onlyOwner(caller); err != nil {
		return err
	}
	a.awards = append(a.awards, AwardEntry{
		Minted:       fixedpoint.Clone(minted),
		TotalCoinday: fixedpoint.Clone(totalSnapshot),
		Timestamp:    now,
	})
	return nil
}

// UpdateTotalCoinday overwrites the global coin-day state. Owner-gated.
func (a *Accumulator) UpdateTotalCoinday(caller domain.Account, newTotal *big.Int, now int64) error {
	if err := a.onlyOwner(caller); err != nil {
		return err
	}
	a.total.Amount = fixedpoint.Clone(newTotal)
	a.total.Timestamp = now
	return nil
}

func (a *Accumulator) onlyOwner(caller domain.Account) error {
	if caller != a.owner {
		return domain.ErrOnlyOwnerAccess
	}
	return nil
}

func (a *Accumulator) info(account domain.Account) *Info {
	info, ok := a.infos[account]
	if !ok {
		info = &Info{Amount: fixedpoint.Zero(), Timestamp: a.total.Timestamp}
		a.infos[account] = info
	}
	return info
}
