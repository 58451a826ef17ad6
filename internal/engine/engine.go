// Package engine hosts the accounting core behind one serialized
// facade. Every public operation runs to completion under a single
// mutex, so ordering between callers is exactly the call order and no
// component ever sees a concurrent mutation. Events collected during
// an operation are journaled and published only after it commits;
// failed operations emit nothing.
package engine

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stableflow/reserve-engine/internal/adapter"
	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/ledger"
	"github.com/stableflow/reserve-engine/internal/logger"
	"github.com/stableflow/reserve-engine/internal/messaging"
	"github.com/stableflow/reserve-engine/internal/oracle"
	"github.com/stableflow/reserve-engine/internal/reserve"
	"github.com/stableflow/reserve-engine/internal/reward"
	"github.com/stableflow/reserve-engine/internal/store"
	"github.com/stableflow/reserve-engine/internal/store/schema"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

// Deps are the wired components the engine serializes access to.
// Publisher and Store may be nil; events are then dropped after commit.
type Deps struct {
	Ledger     *ledger.Ledger
	Controller *reserve.Controller
	Oracle     *oracle.MemoryOracle
	Coinday    *coinday.Accumulator
	Rewards    *reward.Distributor
	Synthetic  synthetic.Token
	Events     *domain.EventLog
	Publisher  messaging.Publisher
	Store      store.Store
	JSON       adapter.JSON
	Clock      adapter.Clock
}

// Engine is the single entry point for all state-changing operations.
type Engine struct {
	mu sync.Mutex
	d  Deps
}

// New creates an engine over wired components.
func New(d Deps) *Engine {
	return &Engine{d: d}
}

// AccountState is a point-in-time read of everything the engine tracks
// for one account.
type AccountState struct {
	Balance       *big.Int
	FreeBalance   *big.Int
	LockedAmount  *big.Int
	LockUntil     int64
	Coinday       *big.Int
	PendingAwards *big.Int
	Reward        *big.Int
	RewardDebt    *big.Int
}

// ReserveState is a point-in-time read of the controller's tranches.
type ReserveState struct {
	CollateralReserve     *big.Int
	CollateralRiskReserve *big.Int
	SyntheticReserve      *big.Int
	SyntheticRiskReserve  *big.Int
	SyntheticSupply       *big.Int
	ShareSupply           *big.Int
	LiabilityRatio        int64
	SharePrice            *big.Int
	LastExpandTime        int64
	LastContractTime      int64
}

// run serializes an operation and releases its events only on success.
func (e *Engine) run(ctx context.Context, fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(); err != nil {
		e.d.Events.Reset()
		return err
	}
	e.dispatch(ctx, e.d.Events.Drain())
	return nil
}

// dispatch journals and publishes committed events. Failures here are
// logged, never propagated: the operation already committed and the
// event channel is informational.
func (e *Engine) dispatch(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	if e.d.Store != nil {
		rows := make([]schema.LedgerEvent, 0, len(events))
		for _, ev := range events {
			row, err := e.toRow(ev)
			if err != nil {
				logger.Error(err, zap.String("event_id", ev.ID))
				continue
			}
			rows = append(rows, row)
		}
		if err := e.d.Store.InsertEvents(ctx, rows); err != nil {
			logger.Error(err, zap.Int("events", len(rows)))
		}
	}
	if e.d.Publisher != nil {
		for i := range events {
			if err := e.d.Publisher.PublishEvent(ctx, &events[i]); err != nil {
				logger.Error(err, zap.String("event_id", events[i].ID))
			}
		}
	}
}

func (e *Engine) toRow(ev domain.Event) (schema.LedgerEvent, error) {
	meta, err := e.d.JSON.Marshal(ev)
	if err != nil {
		return schema.LedgerEvent{}, err
	}
	return schema.LedgerEvent{
		EventID:     ev.ID,
		Type:        string(ev.Type),
		FromAccount: ev.From,
		ToAccount:   ev.To,
		Value:       ev.Value,
		OccurredAt:  time.UnixMilli(ev.Timestamp),
		Meta:        meta,
	}, nil
}

// Transfer moves share tokens from the caller to another account.
func (e *Engine) Transfer(ctx context.Context, caller, to domain.Account, value *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.Transfer(caller, to, value)
	})
}

// TransferFrom moves share tokens on an approved allowance.
func (e *Engine) TransferFrom(ctx context.Context, caller, from, to domain.Account, value *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.TransferFrom(caller, from, to, value)
	})
}

// Approve sets the caller's allowance for a spender.
func (e *Engine) Approve(ctx context.Context, caller, spender domain.Account, value *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.Approve(caller, spender, value)
	})
}

// Mint creates new share tokens. Ledger owner only.
func (e *Engine) Mint(ctx context.Context, caller, to domain.Account, amount *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.Mint(caller, to, amount)
	})
}

// Burn destroys share tokens. Ledger owner only.
func (e *Engine) Burn(ctx context.Context, caller, from domain.Account, amount *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.Burn(caller, from, amount)
	})
}

// SetLock overwrites an account's lock. Ledger owner only.
func (e *Engine) SetLock(ctx context.Context, caller, account domain.Account, untilEpoch int64, amount *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Ledger.SetLock(caller, account, ledger.LockInfo{UntilEpoch: untilEpoch, LockedAmount: amount})
	})
}

// AddLiquidity deposits collateral and mints share (and possibly
// synthetic) tokens to the caller.
func (e *Engine) AddLiquidity(ctx context.Context, caller domain.Account, collateralAmount *big.Int) (reserve.Liquidity, error) {
	var out reserve.Liquidity
	err := e.run(ctx, func() error {
		var err error
		out, err = e.d.Controller.AddLiquidity(caller, collateralAmount)
		return err
	})
	return out, err
}

// RemoveLiquidity redeems collateral by burning the caller's share and
// synthetic tokens.
func (e *Engine) RemoveLiquidity(ctx context.Context, caller domain.Account, shareAmount *big.Int) (*big.Int, error) {
	var out *big.Int
	err := e.run(ctx, func() error {
		var err error
		out, err = e.d.Controller.RemoveLiquidity(caller, shareAmount)
		return err
	})
	return out, err
}

// Expand runs an expansion rebase. Controller owner only.
func (e *Engine) Expand(ctx context.Context, caller domain.Account) (reserve.Rebase, error) {
	var out reserve.Rebase
	err := e.run(ctx, func() error {
		var err error
		out, err = e.d.Controller.Expand(caller)
		return err
	})
	return out, err
}

// Contract runs a contraction rebase. Controller owner only.
func (e *Engine) Contract(ctx context.Context, caller domain.Account) (reserve.Rebase, error) {
	var out reserve.Rebase
	err := e.run(ctx, func() error {
		var err error
		out, err = e.d.Controller.Contract(caller)
		return err
	})
	return out, err
}

// DepositRiskReserve adds collateral to the first-loss tranche.
func (e *Engine) DepositRiskReserve(ctx context.Context, caller domain.Account, amount *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Controller.DepositRiskReserve(caller, amount)
	})
}

// UpdatePrices overwrites the oracle prices. Oracle owner only.
func (e *Engine) UpdatePrices(ctx context.Context, caller domain.Account, collateralPrice, syntheticPrice *big.Int) error {
	return e.run(ctx, func() error {
		return e.d.Oracle.Update(caller, collateralPrice, syntheticPrice)
	})
}

// Account reads the full per-account state.
func (e *Engine) Account(account domain.Account) AccountState {
	e.mu.Lock()
	defer e.mu.Unlock()
	balance := e.d.Ledger.BalanceOf(account)
	lock := e.d.Ledger.LockOf(account)
	pending, _ := e.d.Coinday.PendingAwards(account, balance)
	return AccountState{
		Balance:       balance,
		FreeBalance:   e.d.Ledger.FreeBalanceOf(account),
		LockedAmount:  lock.LockedAmount,
		LockUntil:     lock.UntilEpoch,
		Coinday:       e.d.Coinday.CoindayOf(account).Amount,
		PendingAwards: pending,
		Reward:        e.d.Rewards.RewardOf(account),
		RewardDebt:    e.d.Rewards.RewardDebtOf(account),
	}
}

// Allowance reads the remaining allowance for a spender.
func (e *Engine) Allowance(owner, spender domain.Account) *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.d.Ledger.Allowance(owner, spender)
}

// TotalSupply reads the share token supply.
func (e *Engine) TotalSupply() *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.d.Ledger.TotalSupply()
}

// Reserve reads the controller's tranche and pricing state. The
// liability ratio and share price are zero when the oracle has no
// prices yet.
func (e *Engine) Reserve() ReserveState {
	e.mu.Lock()
	defer e.mu.Unlock()
	state := ReserveState{
		CollateralReserve:     e.d.Controller.CollateralReserve(),
		CollateralRiskReserve: e.d.Controller.CollateralRiskReserve(),
		SyntheticReserve:      e.d.Controller.SyntheticReserve(),
		SyntheticRiskReserve:  e.d.Controller.SyntheticRiskReserve(),
		SyntheticSupply:       e.d.Synthetic.TotalSupply(),
		ShareSupply:           e.d.Ledger.TotalSupply(),
		SharePrice:            new(big.Int),
		LastExpandTime:        e.d.Controller.LastExpandTime(),
		LastContractTime:      e.d.Controller.LastContractTime(),
	}
	if lr, err := e.d.Controller.LiabilityRatio(); err == nil {
		state.LiabilityRatio = lr
	}
	if price, err := e.d.Controller.SharePrice(); err == nil {
		state.SharePrice = price
	}
	return state
}

// Events reads the journal after the given cursor, oldest first.
func (e *Engine) Events(ctx context.Context, afterCursor int64, limit int) ([]schema.LedgerEvent, error) {
	if e.d.Store == nil {
		return nil, nil
	}
	return e.d.Store.ListEvents(ctx, afterCursor, limit)
}
