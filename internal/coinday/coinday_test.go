package coinday_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/coinday"
	"github.com/stableflow/reserve-engine/internal/domain"
)

var (
	ownerAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	holder       = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger     = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func TestSettleIncreaseAccumulates(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)

	// 1000 tokens held for 100 time units
	err := acc.SettleIncrease(ownerAccount, holder, big.NewInt(1000), 100, 0)
	require.NoError(t, err)

	info := acc.CoindayOf(holder)
	assert.Equal(t, int64(100_000), info.Amount.Int64())
	assert.Equal(t, int64(100), info.Timestamp)
}

func TestSettleDecreaseProportional(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)
	require.NoError(t, acc.SettleIncrease(ownerAccount, holder, big.NewInt(1000), 100, 0))

	// withdrawing 25% of the balance removes 25% of the coin-days
	removed, err := acc.SettleDecrease(ownerAccount, holder, big.NewInt(1000), big.NewInt(250), 100, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25_000), removed.Int64())
	assert.Equal(t, int64(75_000), acc.CoindayOf(holder).Amount.Int64())
}

func TestSettleDecreaseZeroBalance(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)

	removed, err := acc.SettleDecrease(ownerAccount, holder, big.NewInt(0), big.NewInt(0), 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed.Int64())
}

func TestPendingAwardsProRata(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)

	// holder accrues 1000 tokens * 100 units = 100_000 coin-days against a
	// global total of 100_000; an award of 500 pays out in full
	require.NoError(t, acc.UpdateTotalCoinday(ownerAccount, big.NewInt(100_000), 100))
	require.NoError(t, acc.AppendAward(ownerAccount, big.NewInt(500), big.NewInt(100_000), 100))

	pending, next := acc.PendingAwards(holder, big.NewInt(1000))
	assert.Equal(t, int64(500), pending.Int64())
	assert.Equal(t, 1, next)
}

func TestPendingAwardsProjectsToEntryTimestamp(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)

	// holder last settled at t=0 with zero coin-days; the award at t=100
	// credits the balance-time integral accrued since then
	require.NoError(t, acc.AppendAward(ownerAccount, big.NewInt(100), big.NewInt(200_000), 100))

	pending, _ := acc.PendingAwards(holder, big.NewInt(1000))
	// (1000 * 100) * 100 / 200_000 = 50
	assert.Equal(t, int64(50), pending.Int64())
}

func TestPendingAwardsSkipsZeroTotalEntries(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)
	require.NoError(t, acc.AppendAward(ownerAccount, big.NewInt(100), big.NewInt(0), 100))

	pending, next := acc.PendingAwards(holder, big.NewInt(1000))
	assert.Equal(t, int64(0), pending.Int64())
	// the cursor still advances past the degenerate entry
	assert.Equal(t, 1, next)
}

func TestPendingAwardsBounded(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)
	entries := coinday.MaxAwardsPerClaim + 10
	// the era at timestamp ts pays holder floor(1000*ts * 100_000 / 1_000_000)
	for i := 0; i < entries; i++ {
		require.NoError(t, acc.AppendAward(ownerAccount, big.NewInt(100_000), big.NewInt(1_000_000), int64(i+1)))
	}
	unbounded := int64(0)
	for ts := int64(1); ts <= int64(entries); ts++ {
		unbounded += 100 * ts
	}

	first, next := acc.PendingAwards(holder, big.NewInt(1000))
	assert.Equal(t, coinday.MaxAwardsPerClaim, next)

	// committing the cursor lets the next claim resume where this one
	// stopped; the two bounded passes together pay the unbounded total
	require.NoError(t, acc.SettleIncrease(ownerAccount, holder, big.NewInt(1000), int64(coinday.MaxAwardsPerClaim), next))
	second, next := acc.PendingAwards(holder, big.NewInt(1000))
	assert.Equal(t, entries, next)
	assert.Equal(t, unbounded, first.Int64()+second.Int64())
}

func TestAwardLogAppendOnly(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)
	require.NoError(t, acc.AppendAward(ownerAccount, big.NewInt(42), big.NewInt(100), 7))

	assert.Equal(t, 1, acc.AwardCount())
	entry := acc.Award(0)
	assert.Equal(t, int64(42), entry.Minted.Int64())
	assert.Equal(t, int64(100), entry.TotalCoinday.Int64())
	assert.Equal(t, int64(7), entry.Timestamp)

	// returned entry is a copy
	entry.Minted.SetInt64(999)
	assert.Equal(t, int64(42), acc.Award(0).Minted.Int64())
}

func TestOwnerGating(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)

	err := acc.SettleIncrease(stranger, holder, big.NewInt(1), 1, 0)
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)

	_, err = acc.SettleDecrease(stranger, holder, big.NewInt(1), big.NewInt(1), 1, 0)
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)

	err = acc.AppendAward(stranger, big.NewInt(1), big.NewInt(1), 1)
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)

	err = acc.UpdateTotalCoinday(stranger, big.NewInt(1), 1)
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)
}

func TestTransferOwnership(t *testing.T) {
	acc := coinday.New(ownerAccount, 0)
	require.NoError(t, acc.TransferOwnership(ownerAccount, stranger))

	assert.Equal(t, stranger, acc.Owner())
	assert.ErrorIs(t, acc.AppendAward(ownerAccount, big.NewInt(1), big.NewInt(1), 1), domain.ErrOnlyOwnerAccess)
	assert.NoError(t, acc.AppendAward(stranger, big.NewInt(1), big.NewInt(1), 1))
}
