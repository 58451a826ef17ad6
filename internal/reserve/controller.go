// Package reserve implements the rebase controller: it custodies the
// collateral and synthetic reserve tranches, prices the share token,
// and executes liquidity provisioning and expansion/contraction
// rebases against the oracle and the swap venue.
package reserve

import (
	"fmt"
	"math/big"

	"github.com/stableflow/reserve-engine/internal/adapter"
	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/oracle"
	"github.com/stableflow/reserve-engine/internal/swap"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

// ShareLedger is the slice of the share-token ledger the controller
// needs. Mint and Burn are the only mutations; the controller never
// touches balances directly.
//
//go:generate mockgen -source=controller.go -destination=../mocks/reserve.go -package=mocks
type ShareLedger interface {
	Mint(caller, to domain.Account, amount *big.Int) error
	Burn(caller, from domain.Account, amount *big.Int) error
	TotalSupply() *big.Int
	FreeBalanceOf(account domain.Account) *big.Int
}

// CoindayLog is the award-log slice of the coin-day accumulator used
// during expansion issuance.
type CoindayLog interface {
	TotalCoinday() coinday.Total
	UpdateTotalCoinday(caller domain.Account, newTotal *big.Int, now int64) error
	AppendAward(caller domain.Account, minted, totalSnapshot *big.Int, now int64) error
}

// Params are the governance knobs of the controller.
type Params struct {
	// PegTarget is the synthetic price the rebases steer toward,
	// fixed-point with 8 decimals.
	PegTarget *big.Int
	// MinRebaseInterval is the minimum gap between two expansions and
	// between two contractions, unix milliseconds.
	MinRebaseInterval int64
}

// Liquidity is the result of an AddLiquidity call.
type Liquidity struct {
	ShareTokens     *big.Int
	SyntheticTokens *big.Int
}

// Rebase describes what one Expand or Contract actually moved.
type Rebase struct {
	// SyntheticMoved is the synthetic amount swapped or acquired
	SyntheticMoved *big.Int
	// CollateralMoved is the collateral amount received or spent
	CollateralMoved *big.Int
	// ReserveUsed / RiskReserveUsed split the consumed tranche
	ReserveUsed     *big.Int
	RiskReserveUsed *big.Int
	// Issued is the newly issued synthetic during an expansion shortfall
	Issued *big.Int
}

// Controller holds the reserve tranches and executes rebases. All
// state transitions either complete fully or leave the tranches
// untouched: validation and pricing run first, external swaps and
// mints next, and the tranche bookkeeping commits last.
type Controller struct {
	owner domain.Account
	// authority is the fixed identity presented to the ledger, the
	// accumulator and the synthetic token; unlike owner it does not
	// move with TransferOwnership
	authority domain.Account

	collateralReserve     *big.Int
	collateralRiskReserve *big.Int
	syntheticReserve      *big.Int
	syntheticRiskReserve  *big.Int
	lastExpandTime        int64
	lastContractTime      int64

	params Params

	ledger    ShareLedger
	coinday   CoindayLog
	synthetic synthetic.Token
	oracle    oracle.PriceOracle
	venue     swap.Venue
	clock     adapter.Clock
	events    *domain.EventLog
}

// New wires a controller. The owner account also owns the ledger, the
// accumulator and the synthetic token in the default deployment.
func New(
	owner domain.Account,
	params Params,
	ledger ShareLedger,
	cd CoindayLog,
	syn synthetic.Token,
	ora oracle.PriceOracle,
	venue swap.Venue,
	clock adapter.Clock,
	events *domain.EventLog,
) *Controller {
	return &Controller{
		owner:                 owner,
		authority:             owner,
		collateralReserve:     fixedpoint.Zero(),
		collateralRiskReserve: fixedpoint.Zero(),
		syntheticReserve:      fixedpoint.Zero(),
		syntheticRiskReserve:  fixedpoint.Zero(),
		params: Params{
			PegTarget:         fixedpoint.Clone(params.PegTarget),
			MinRebaseInterval: params.MinRebaseInterval,
		},
		ledger:    ledger,
		coinday:   cd,
		synthetic: syn,
		oracle:    ora,
		venue:     venue,
		clock:     clock,
		events:    events,
	}
}

// Owner returns the current owner account
func (c *Controller) Owner() domain.Account { return c.owner }

// TransferOwnership hands the controller to a new owner
func (c *Controller) TransferOwnership(caller, newOwner domain.Account) error {
	if err := c.onlyOwner(caller); err != nil {
		return err
	}
	c.owner = newOwner
	return nil
}

// CollateralReserve returns the primary collateral tranche
func (c *Controller) CollateralReserve() *big.Int {
	return fixedpoint.Clone(c.collateralReserve)
}

// CollateralRiskReserve returns the first-loss collateral tranche
func (c *Controller) CollateralRiskReserve() *big.Int {
	return fixedpoint.Clone(c.collateralRiskReserve)
}

// SyntheticReserve returns the primary synthetic tranche
func (c *Controller) SyntheticReserve() *big.Int {
	return fixedpoint.Clone(c.syntheticReserve)
}

// SyntheticRiskReserve returns the first-loss synthetic tranche
func (c *Controller) SyntheticRiskReserve() *big.Int {
	return fixedpoint.Clone(c.syntheticRiskReserve)
}

// LastExpandTime returns when the last expansion committed, unix ms
func (c *Controller) LastExpandTime() int64 { return c.lastExpandTime }

// LastContractTime returns when the last contraction committed, unix ms
func (c *Controller) LastContractTime() int64 { return c.lastContractTime }

// PegTarget returns the configured peg target price
func (c *Controller) PegTarget() *big.Int {
	return fixedpoint.Clone(c.params.PegTarget)
}

// LiabilityRatio is the synthetic supply's collateral-denominated value
// as a percentage of the collateral reserve, clamped into [1, 100].
func (c *Controller) LiabilityRatio() (int64, error) {
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return 0, err
	}
	return c.liabilityRatio(colPrice, synPrice), nil
}

// SharePrice prices one share token from the reserve's net value:
// (collateral_value - synthetic_value) / share_supply. Before any
// shares exist it equals the collateral price.
func (c *Controller) SharePrice() (*big.Int, error) {
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return nil, err
	}
	return c.sharePrice(colPrice, synPrice)
}

// DepositRiskReserve adds collateral to the first-loss tranche. Open to
// anyone willing to donate backing.
func (c *Controller) DepositRiskReserve(caller domain.Account, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	c.collateralRiskReserve = fixedpoint.Add(c.collateralRiskReserve, amount)
	return nil
}

// AddLiquidity deposits collateral into the reserve. Below a liability
// ratio of 30 the deposit value splits between share tokens and
// synthetic tokens in proportion (100-lr):lr; otherwise only share
// tokens are minted.
func (c *Controller) AddLiquidity(caller domain.Account, collateralAmount *big.Int) (Liquidity, error) {
	if collateralAmount == nil || collateralAmount.Sign() <= 0 {
		return Liquidity{}, domain.ErrInvalidAmount
	}
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return Liquidity{}, err
	}
	shareTokens, synTokens, err := c.computeLiquidity(collateralAmount, colPrice, synPrice)
	if err != nil {
		return Liquidity{}, err
	}
	if shareTokens.Sign() <= 0 {
		return Liquidity{}, domain.ErrInvalidAmount
	}

	// the share mint may pay out matured awards through the synthetic
	// token, so it runs first and its failure aborts the whole deposit;
	// the synthetic leg is pre-validated and commits after
	if err := c.ledger.Mint(c.authority, caller, shareTokens); err != nil {
		return Liquidity{}, fmt.Errorf("share mint failed: %w", err)
	}
	if synTokens.Sign() > 0 {
		must(c.synthetic.Mint(c.authority, caller, synTokens))
	}

	c.collateralReserve = fixedpoint.Add(c.collateralReserve, collateralAmount)
	c.events.Emit(domain.Event{
		Type:       domain.EventTypeLiquidityAdded,
		From:       domain.AccountRef(caller),
		Value:      domain.AmountStr(collateralAmount),
		Share:      domain.AmountStr(shareTokens),
		Synthetic:  domain.AmountStr(synTokens),
		Collateral: domain.AmountStr(collateralAmount),
		Timestamp:  c.clock.NowMillis(),
	})
	return Liquidity{ShareTokens: shareTokens, SyntheticTokens: synTokens}, nil
}

// ComputeLiquidity previews what AddLiquidity would mint for a deposit.
func (c *Controller) ComputeLiquidity(collateralAmount *big.Int) (*big.Int, *big.Int, error) {
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return nil, nil, err
	}
	return c.computeLiquidity(collateralAmount, colPrice, synPrice)
}

func (c *Controller) computeLiquidity(collateralAmount, colPrice, synPrice *big.Int) (*big.Int, *big.Int, error) {
	sharePrice, err := c.sharePrice(colPrice, synPrice)
	if err != nil {
		return nil, nil, err
	}
	if sharePrice.Sign() == 0 {
		return nil, nil, domain.ErrPrecondition
	}
	lr := c.liabilityRatio(colPrice, synPrice)
	depositValue := fixedpoint.Mul(colPrice, collateralAmount)
	if lr < 30 {
		shareTokens := fixedpoint.Div(fixedpoint.Pct(depositValue, 100-lr), sharePrice)
		synTokens := fixedpoint.Div(fixedpoint.Pct(depositValue, lr), synPrice)
		return shareTokens, synTokens, nil
	}
	return fixedpoint.Div(depositValue, sharePrice), fixedpoint.Zero(), nil
}

// RemoveLiquidity redeems collateral by burning share tokens plus the
// proportional synthetic amount. Permitted only while the liability
// ratio is above 90.
func (c *Controller) RemoveLiquidity(caller domain.Account, shareAmount *big.Int) (*big.Int, error) {
	if shareAmount == nil || shareAmount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return nil, err
	}
	lr := c.liabilityRatio(colPrice, synPrice)
	if lr <= 90 {
		return nil, fmt.Errorf("%w: liability ratio %d not above 90", domain.ErrPrecondition, lr)
	}
	if lr >= 100 {
		// nothing left for share holders to redeem
		return nil, fmt.Errorf("%w: reserve fully consumed by synthetic liability", domain.ErrPrecondition)
	}
	sharePrice, err := c.sharePrice(colPrice, synPrice)
	if err != nil {
		return nil, err
	}

	shareValue := fixedpoint.Mul(shareAmount, sharePrice)
	synNeed := fixedpoint.MulDiv(shareValue, big.NewInt(lr), fixedpoint.Mul(synPrice, big.NewInt(100-lr)))
	collateral := fixedpoint.MulDiv(shareValue, big.NewInt(100), fixedpoint.Mul(colPrice, big.NewInt(100-lr)))
	if collateral.Cmp(c.collateralReserve) > 0 {
		return nil, domain.ErrInsufficientSupply
	}
	if c.ledger.FreeBalanceOf(caller).Cmp(shareAmount) < 0 {
		return nil, domain.ErrInsufficientFreeBalance
	}
	if synNeed.Sign() > 0 && c.synthetic.BalanceOf(caller).Cmp(synNeed) < 0 {
		return nil, fmt.Errorf("%w: synthetic balance below redemption need", domain.ErrInsufficientSupply)
	}

	// the share burn may pay out matured awards through the synthetic
	// token, so it runs first and its failure aborts the whole redemption.
	// The synthetic burn cannot fail after the balance check above because
	// award payouts only credit the caller.
	if err := c.ledger.Burn(c.authority, caller, shareAmount); err != nil {
		return nil, fmt.Errorf("share burn failed: %w", err)
	}
	if synNeed.Sign() > 0 {
		must(c.synthetic.Burn(c.authority, caller, synNeed))
	}

	c.collateralReserve = fixedpoint.Sub(c.collateralReserve, collateral)
	c.events.Emit(domain.Event{
		Type:       domain.EventTypeLiquidityRemoved,
		From:       domain.AccountRef(caller),
		Value:      domain.AmountStr(collateral),
		Share:      domain.AmountStr(shareAmount),
		Synthetic:  domain.AmountStr(synNeed),
		Collateral: domain.AmountStr(collateral),
		Timestamp:  c.clock.NowMillis(),
	})
	return collateral, nil
}

// Expand pushes the synthetic price down toward the peg by selling
// synthetic reserves for collateral. When both synthetic tranches run
// dry the shortfall is covered by new issuance: 95% of the issue is
// appended to the coin-day award log for share holders and 5% is sold
// for collateral credited to the risk tranche. Owner-gated.
func (c *Controller) Expand(caller domain.Account) (Rebase, error) {
	if err := c.onlyOwner(caller); err != nil {
		return Rebase{}, err
	}
	colPrice, synPrice, err := c.prices()
	if err != nil {
		return Rebase{}, err
	}
	lr := c.liabilityRatio(colPrice, synPrice)
	if lr >= 70 {
		return Rebase{}, fmt.Errorf("%w: liability ratio %d not below 70", domain.ErrPrecondition, lr)
	}
	if synPrice.Cmp(c.params.PegTarget) <= 0 {
		return Rebase{}, fmt.Errorf("%w: price not above peg target", domain.ErrPrecondition)
	}
	now := c.clock.NowMillis()
	if now-c.lastExpandTime < c.params.MinRebaseInterval {
		return Rebase{}, domain.ErrIntervalNotElapsed
	}

	// target swap size from the price gap over the peg
	gap := fixedpoint.Sub(synPrice, c.params.PegTarget)
	delta := fixedpoint.MulDiv(c.synthetic.TotalSupply(), gap, c.params.PegTarget)
	if delta.Sign() <= 0 {
		return Rebase{}, fmt.Errorf("%w: expansion size is zero", domain.ErrPrecondition)
	}

	fromReserve := fixedpoint.Min(delta, c.syntheticReserve)
	fromRisk := fixedpoint.Min(fixedpoint.Sub(delta, fromReserve), c.syntheticRiskReserve)
	available := fixedpoint.Add(fromReserve, fromRisk)
	shortfall := fixedpoint.Sub(delta, available)

	result := Rebase{
		SyntheticMoved:  fixedpoint.Zero(),
		CollateralMoved: fixedpoint.Zero(),
		ReserveUsed:     fromReserve,
		RiskReserveUsed: fromRisk,
		Issued:          fixedpoint.Zero(),
	}

	var issue, rewardSlice, swapSlice, projected *big.Int
	if shortfall.Sign() > 0 {
		// theoretical issue equals the full target; cap it so the 5%
		// market slice never exceeds the shortfall
		issue = fixedpoint.Min(delta, fixedpoint.MulInt64(shortfall, 20))
		rewardSlice = fixedpoint.Pct(issue, 95)
		swapSlice = fixedpoint.Sub(issue, rewardSlice)

		total := c.coinday.TotalCoinday()
		projected = fixedpoint.Add(total.Amount, fixedpoint.MulInt64(c.ledger.TotalSupply(), now-total.Timestamp))
		if projected.Sign() == 0 {
			return Rebase{}, fmt.Errorf("%w: no coin-day weight to receive issuance", domain.ErrPrecondition)
		}
	}

	// both venue legs run before any state moves, so a failed swap aborts
	// with the tranches, the award log and the synthetic supply untouched
	var outAvailable, outIssue *big.Int
	if available.Sign() > 0 {
		out, err := c.venue.Swap(c.authority, domain.TokenSynthetic, available)
		if err != nil {
			return Rebase{}, fmt.Errorf("reserve swap failed: %w", err)
		}
		outAvailable = out
	}
	if swapSlice != nil && swapSlice.Sign() > 0 {
		out, err := c.venue.Swap(c.authority, domain.TokenSynthetic, swapSlice)
		if err != nil {
			return Rebase{}, fmt.Errorf("issuance swap failed: %w", err)
		}
		outIssue = out
	}

	if issue != nil {
		must(c.coinday.UpdateTotalCoinday(c.authority, projected, now))
		must(c.coinday.AppendAward(c.authority, rewardSlice, projected, now))
		result.Issued = issue
	}

	if outAvailable != nil {
		// split proceeds by the tranche that funded the swap
		toReserve := fixedpoint.MulDiv(outAvailable, fromReserve, available)
		c.syntheticReserve = fixedpoint.Sub(c.syntheticReserve, fromReserve)
		c.syntheticRiskReserve = fixedpoint.Sub(c.syntheticRiskReserve, fromRisk)
		c.collateralReserve = fixedpoint.Add(c.collateralReserve, toReserve)
		c.collateralRiskReserve = fixedpoint.Add(c.collateralRiskReserve, fixedpoint.Sub(outAvailable, toReserve))
		result.SyntheticMoved = fixedpoint.Add(result.SyntheticMoved, available)
		result.CollateralMoved = fixedpoint.Add(result.CollateralMoved, outAvailable)
	}

	if outIssue != nil {
		// the market slice backing the second swap is minted on commit
		must(c.synthetic.Mint(c.authority, c.authority, swapSlice))
		c.collateralRiskReserve = fixedpoint.Add(c.collateralRiskReserve, outIssue)
		result.SyntheticMoved = fixedpoint.Add(result.SyntheticMoved, swapSlice)
		result.CollateralMoved = fixedpoint.Add(result.CollateralMoved, outIssue)
	}

	c.lastExpandTime = now
	c.events.Emit(domain.Event{
		Type:            domain.EventTypeExpansion,
		Value:           domain.AmountStr(delta),
		Synthetic:       domain.AmountStr(result.SyntheticMoved),
		Collateral:      domain.AmountStr(result.CollateralMoved),
		ReserveUsed:     domain.AmountStr(fromReserve),
		RiskReserveUsed: domain.AmountStr(fromRisk),
		Issued:          domain.AmountStr(result.Issued),
		Timestamp:       now,
	})
	return result, nil
}

// Contract pulls the synthetic price up toward the peg by buying
// synthetic with collateral, drawing the risk tranche first and then
// at most 2% of the primary reserve. Owner-gated.
func (c *Controller) Contract(caller domain.Account) (Rebase, error) {
	if err := c.onlyOwner(caller); err != nil {
		return Rebase{}, err
	}
	_, synPrice, err := c.prices()
	if err != nil {
		return Rebase{}, err
	}
	// contraction triggers once price falls 2% below the peg
	bound := fixedpoint.Pct(c.params.PegTarget, 98)
	if synPrice.Cmp(bound) >= 0 {
		return Rebase{}, fmt.Errorf("%w: price not below contraction bound", domain.ErrPrecondition)
	}
	now := c.clock.NowMillis()
	if now-c.lastContractTime < c.params.MinRebaseInterval {
		return Rebase{}, domain.ErrIntervalNotElapsed
	}

	gap := fixedpoint.Sub(bound, synPrice)
	deltaSyn := fixedpoint.MulDiv(c.synthetic.TotalSupply(), gap, c.params.PegTarget)
	if deltaSyn.Sign() <= 0 {
		return Rebase{}, fmt.Errorf("%w: contraction size is zero", domain.ErrPrecondition)
	}

	// venue spot rate converts the synthetic target into collateral
	synPerUnit, err := c.venue.Quote(domain.TokenCollateral, fixedpoint.Scale)
	if err != nil {
		return Rebase{}, fmt.Errorf("venue unavailable: %w", err)
	}
	if synPerUnit.Sign() == 0 {
		return Rebase{}, fmt.Errorf("%w: venue quotes zero synthetic per collateral unit", domain.ErrPrecondition)
	}
	deltaCol := fixedpoint.MulDiv(deltaSyn, fixedpoint.Scale, synPerUnit)

	fromRisk := fixedpoint.Zero()
	fromReserve := fixedpoint.Zero()
	if c.collateralRiskReserve.Sign() > 0 {
		fromRisk = fixedpoint.Min(deltaCol, c.collateralRiskReserve)
	} else {
		fromReserve = fixedpoint.Min(deltaCol, fixedpoint.Pct(c.collateralReserve, 2))
	}
	spend := fixedpoint.Add(fromRisk, fromReserve)
	if spend.Sign() <= 0 {
		return Rebase{}, fmt.Errorf("%w: no collateral tranche available", domain.ErrPrecondition)
	}

	out, err := c.venue.Swap(c.authority, domain.TokenCollateral, spend)
	if err != nil {
		return Rebase{}, fmt.Errorf("contraction swap failed: %w", err)
	}
	c.collateralRiskReserve = fixedpoint.Sub(c.collateralRiskReserve, fromRisk)
	c.collateralReserve = fixedpoint.Sub(c.collateralReserve, fromReserve)
	// proceeds replenish the tranche that funded the buy
	if fromRisk.Sign() > 0 {
		c.syntheticRiskReserve = fixedpoint.Add(c.syntheticRiskReserve, out)
	} else {
		c.syntheticReserve = fixedpoint.Add(c.syntheticReserve, out)
	}

	c.lastContractTime = now
	c.events.Emit(domain.Event{
		Type:            domain.EventTypeContraction,
		Value:           domain.AmountStr(spend),
		Synthetic:       domain.AmountStr(out),
		Collateral:      domain.AmountStr(spend),
		ReserveUsed:     domain.AmountStr(fromReserve),
		RiskReserveUsed: domain.AmountStr(fromRisk),
		Timestamp:       now,
	})
	return Rebase{
		SyntheticMoved:  out,
		CollateralMoved: spend,
		ReserveUsed:     fromReserve,
		RiskReserveUsed: fromRisk,
		Issued:          fixedpoint.Zero(),
	}, nil
}

// prices reads both oracle prices, treating zero as unavailable.
func (c *Controller) prices() (colPrice, synPrice *big.Int, err error) {
	colPrice = c.oracle.CollateralPrice()
	synPrice = c.oracle.SyntheticPrice()
	if colPrice.Sign() <= 0 || synPrice.Sign() <= 0 {
		return nil, nil, domain.ErrPriceUnavailable
	}
	return colPrice, synPrice, nil
}

// liabilityRatio clamps into [1, 100]. A reserve with no synthetic
// liability floors at 1; an empty reserve against outstanding
// synthetic caps at 100.
func (c *Controller) liabilityRatio(colPrice, synPrice *big.Int) int64 {
	synSupply := c.synthetic.TotalSupply()
	if synSupply.Sign() == 0 {
		return 1
	}
	if c.collateralReserve.Sign() == 0 {
		return 100
	}
	liability := fixedpoint.MulInt64(fixedpoint.Mul(synSupply, synPrice), 100)
	backing := fixedpoint.Mul(colPrice, c.collateralReserve)
	lr := fixedpoint.Div(liability, backing)
	switch {
	case lr.Cmp(big.NewInt(100)) > 0:
		return 100
	case lr.Cmp(big.NewInt(1)) < 0:
		return 1
	default:
		return lr.Int64()
	}
}

// sharePrice = (collateral_value - synthetic_value) / share_supply,
// or the collateral price before any shares exist. A negative net
// value is a precondition failure, not a negative price.
func (c *Controller) sharePrice(colPrice, synPrice *big.Int) (*big.Int, error) {
	shareSupply := c.ledger.TotalSupply()
	if shareSupply.Sign() == 0 {
		return fixedpoint.Clone(colPrice), nil
	}
	net := fixedpoint.Sub(
		fixedpoint.Mul(colPrice, c.collateralReserve),
		fixedpoint.Mul(synPrice, c.synthetic.TotalSupply()),
	)
	if net.Sign() < 0 {
		return nil, fmt.Errorf("%w: reserve value below synthetic liability", domain.ErrPrecondition)
	}
	return fixedpoint.Div(net, shareSupply), nil
}

func (c *Controller) onlyOwner(caller domain.Account) error {
	if caller != c.owner {
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
