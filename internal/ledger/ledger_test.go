package ledger_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/ledger"
	"github.com/stableflow/reserve-engine/internal/mocks"
	"github.com/stableflow/reserve-engine/internal/reward"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

var (
	ownerAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	alice        = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	bob          = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

var genesisEmission = big.NewInt(2_000_000_000_000)

// testLedger wires a ledger over real accumulators and a mock clock whose
// time advances by assigning to now.
type testLedger struct {
	ctrl      *gomock.Controller
	now       int64
	coinday   *coinday.Accumulator
	rewards   *reward.Distributor
	synthetic *synthetic.MemoryToken
	events    *domain.EventLog
	ledger    *ledger.Ledger
}

func setupTestLedger(t *testing.T) *testLedger {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	tl := &testLedger{
		ctrl:      ctrl,
		coinday:   coinday.New(ownerAccount, 0),
		rewards:   reward.New(ownerAccount, genesisEmission, 0),
		synthetic: synthetic.NewMemoryToken(ownerAccount, domain.ShareTokenDecimals),
		events:    &domain.EventLog{},
	}
	clock.EXPECT().NowMillis().DoAndReturn(func() int64 { return tl.now }).AnyTimes()
	tl.ledger = ledger.New(ownerAccount, tl.coinday, tl.rewards, tl.synthetic, clock, tl.events)
	return tl
}

func tearDownTestLedger(tl *testLedger) {
	tl.ctrl.Finish()
}

func amount(tokens int64) *big.Int {
	return fixedpoint.MulInt64(big.NewInt(tokens), fixedpoint.Scale.Int64())
}

func TestMintAndTotalSupply(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))
	assert.Equal(t, amount(100).String(), tl.ledger.BalanceOf(alice).String())
	assert.Equal(t, amount(100).String(), tl.ledger.TotalSupply().String())

	assert.ErrorIs(t, tl.ledger.Mint(bob, alice, amount(1)), domain.ErrOnlyOwnerAccess)
	assert.ErrorIs(t, tl.ledger.Mint(ownerAccount, alice, big.NewInt(0)), domain.ErrInvalidAmount)
}

func TestTransferConservesSupplyAndCoinday(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))

	tl.now = domain.DayMillis
	require.NoError(t, tl.ledger.Transfer(alice, bob, amount(30)))

	assert.Equal(t, amount(70).String(), tl.ledger.BalanceOf(alice).String())
	assert.Equal(t, amount(30).String(), tl.ledger.BalanceOf(bob).String())
	assert.Equal(t, amount(100).String(), tl.ledger.TotalSupply().String())

	// 30% of the sender's coin-days leave with the 30% of balance sent
	fullDay := fixedpoint.MulInt64(amount(100), domain.DayMillis)
	wantAlice := fixedpoint.Pct(fullDay, 70)
	assert.Equal(t, wantAlice.String(), tl.coinday.CoindayOf(alice).Amount.String())

	// the global integral drops by exactly the removed coin-days
	assert.Equal(t, wantAlice.String(), tl.coinday.TotalCoinday().Amount.String())
}

func TestSelfTransferConservesSupply(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))

	tl.now = domain.DayMillis
	fullDay := fixedpoint.MulInt64(amount(100), domain.DayMillis)
	require.NoError(t, tl.coinday.AppendAward(ownerAccount, amount(5), fullDay, tl.now))

	require.NoError(t, tl.ledger.Transfer(alice, alice, amount(40)))

	assert.Equal(t, amount(100).String(), tl.ledger.BalanceOf(alice).String())
	assert.Equal(t, amount(100).String(), tl.ledger.TotalSupply().String())

	// the moved fraction still sheds its coin-days, both per-account and
	// globally
	wantCoinday := fixedpoint.Pct(fullDay, 60)
	assert.Equal(t, wantCoinday.String(), tl.coinday.CoindayOf(alice).Amount.String())
	assert.Equal(t, wantCoinday.String(), tl.coinday.TotalCoinday().Amount.String())

	// the award pays out exactly once
	assert.Equal(t, amount(5).String(), tl.synthetic.BalanceOf(alice).String())
	assert.Equal(t, 1, tl.coinday.CoindayOf(alice).NextAwardIndex)
}

func TestTransferRealizesReward(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))

	// alice holds the full supply through the first emission day
	tl.now = domain.DayMillis
	require.NoError(t, tl.ledger.Transfer(alice, bob, amount(30)))
	assert.Equal(t, genesisEmission.String(), tl.rewards.RewardOf(alice).String())
	assert.Equal(t, int64(0), tl.rewards.RewardOf(bob).Int64())
}

func TestTransferInsufficientFreeBalance(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(10)))
	assert.ErrorIs(t, tl.ledger.Transfer(alice, bob, amount(11)), domain.ErrInsufficientFreeBalance)
	assert.ErrorIs(t, tl.ledger.Transfer(alice, bob, big.NewInt(-1)), domain.ErrInvalidAmount)
}

func TestLockRestrictsTransfers(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))
	require.NoError(t, tl.ledger.SetLock(ownerAccount, alice, ledger.LockInfo{UntilEpoch: 99, LockedAmount: amount(80)}))

	assert.Equal(t, amount(20).String(), tl.ledger.FreeBalanceOf(alice).String())
	assert.ErrorIs(t, tl.ledger.Transfer(alice, bob, amount(30)), domain.ErrInsufficientFreeBalance)
	assert.NoError(t, tl.ledger.Transfer(alice, bob, amount(20)))

	assert.ErrorIs(t, tl.ledger.SetLock(bob, alice, ledger.LockInfo{LockedAmount: amount(1)}), domain.ErrOnlyOwnerAccess)
}

func TestApproveAndTransferFrom(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))
	require.NoError(t, tl.ledger.Approve(alice, bob, amount(50)))
	assert.Equal(t, amount(50).String(), tl.ledger.Allowance(alice, bob).String())

	require.NoError(t, tl.ledger.TransferFrom(bob, alice, bob, amount(30)))
	assert.Equal(t, amount(20).String(), tl.ledger.Allowance(alice, bob).String())
	assert.Equal(t, amount(30).String(), tl.ledger.BalanceOf(bob).String())

	assert.ErrorIs(t, tl.ledger.TransferFrom(bob, alice, bob, amount(21)), domain.ErrInsufficientAllowance)
	assert.ErrorIs(t, tl.ledger.Approve(alice, bob, big.NewInt(-1)), domain.ErrInvalidAmount)
}

func TestBurn(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))

	tl.now = domain.DayMillis
	require.NoError(t, tl.ledger.Burn(ownerAccount, alice, amount(40)))
	assert.Equal(t, amount(60).String(), tl.ledger.BalanceOf(alice).String())
	assert.Equal(t, amount(60).String(), tl.ledger.TotalSupply().String())

	// coin-days shrink in proportion to the burned fraction
	fullDay := fixedpoint.MulInt64(amount(100), domain.DayMillis)
	assert.Equal(t, fixedpoint.Pct(fullDay, 60).String(), tl.coinday.CoindayOf(alice).Amount.String())

	assert.ErrorIs(t, tl.ledger.Burn(ownerAccount, alice, amount(61)), domain.ErrInsufficientSupply)
	assert.ErrorIs(t, tl.ledger.Burn(alice, alice, amount(1)), domain.ErrOnlyOwnerAccess)
}

func TestBurnLockedBalance(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))
	require.NoError(t, tl.ledger.SetLock(ownerAccount, alice, ledger.LockInfo{LockedAmount: amount(90)}))

	assert.ErrorIs(t, tl.ledger.Burn(ownerAccount, alice, amount(20)), domain.ErrInsufficientFreeBalance)
	assert.NoError(t, tl.ledger.Burn(ownerAccount, alice, amount(10)))
}

func TestAwardClaimPaysSynthetic(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))

	// an award lands after one day; alice holds the full coin-day weight
	tl.now = domain.DayMillis
	fullDay := fixedpoint.MulInt64(amount(100), domain.DayMillis)
	require.NoError(t, tl.coinday.AppendAward(ownerAccount, amount(5), fullDay, tl.now))

	// the next balance change claims the award through the synthetic token
	require.NoError(t, tl.ledger.Transfer(alice, bob, amount(1)))
	assert.Equal(t, amount(5).String(), tl.synthetic.BalanceOf(alice).String())
	assert.Equal(t, 1, tl.coinday.CoindayOf(alice).NextAwardIndex)
}

func TestTransferOwnershipKeepsSettlementWorking(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.TransferOwnership(ownerAccount, bob))
	assert.ErrorIs(t, tl.ledger.Mint(ownerAccount, alice, amount(1)), domain.ErrOnlyOwnerAccess)

	// the accumulators still answer to the original authority, so the new
	// owner's mint settles without error
	require.NoError(t, tl.ledger.Mint(bob, alice, amount(100)))
	tl.now = domain.DayMillis
	require.NoError(t, tl.ledger.Transfer(alice, bob, amount(10)))
}

func TestEventsEmitted(t *testing.T) {
	tl := setupTestLedger(t)
	defer tearDownTestLedger(tl)

	require.NoError(t, tl.ledger.Mint(ownerAccount, alice, amount(100)))
	require.NoError(t, tl.ledger.Transfer(alice, bob, amount(30)))
	require.NoError(t, tl.ledger.Approve(alice, bob, amount(5)))

	events := tl.events.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventTypeMint, events[0].Type)
	assert.Equal(t, domain.EventTypeTransfer, events[1].Type)
	assert.Equal(t, domain.EventTypeApproval, events[2].Type)
	assert.Equal(t, amount(30).String(), events[1].Value)
	assert.Equal(t, alice.Hex(), *events[1].From)
	assert.Equal(t, bob.Hex(), *events[1].To)
	assert.NotEmpty(t, events[1].ID)

	assert.Empty(t, tl.events.Drain())
}
