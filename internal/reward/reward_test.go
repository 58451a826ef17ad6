package reward_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/fixedpoint"
	"github.com/stableflow/reserve-engine/internal/reward"
)

var (
	ownerAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	holder       = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger     = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

// 20_000 tokens at 8 decimals
var genesisEmission = big.NewInt(2_000_000_000_000)

func TestAccrueOneWholeDay(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	supply := big.NewInt(10_000_000_000) // 100 tokens

	delta, err := d.Accrue(ownerAccount, domain.DayMillis, supply)
	require.NoError(t, err)
	assert.Equal(t, genesisEmission.String(), delta.String())

	rec := d.LastRecord()
	assert.Equal(t, fixedpoint.Pct(genesisEmission, 99).String(), rec.DayEmission.String())
	assert.Equal(t, int64(domain.DayMillis), rec.DayStart)
	assert.Equal(t, int64(0), rec.PartialEmission.Int64())
	assert.Equal(t, genesisEmission.String(), d.TotalReward().String())
}

func TestAccrueDecaysPerDay(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	supply := big.NewInt(10_000_000_000)

	delta, err := d.Accrue(ownerAccount, 3*domain.DayMillis, supply)
	require.NoError(t, err)

	// day emissions decay 1% per whole day: g + 0.99g + 0.9801g
	day2 := fixedpoint.Pct(genesisEmission, 99)
	day3 := fixedpoint.Pct(day2, 99)
	want := fixedpoint.Add(genesisEmission, fixedpoint.Add(day2, day3))
	assert.Equal(t, want.String(), delta.String())
	assert.Equal(t, fixedpoint.Pct(day3, 99).String(), d.LastRecord().DayEmission.String())
}

func TestAccruePartialDay(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	supply := big.NewInt(10_000_000_000)

	delta, err := d.Accrue(ownerAccount, domain.DayMillis/2, supply)
	require.NoError(t, err)
	assert.Equal(t, fixedpoint.DivInt64(genesisEmission, 2).String(), delta.String())

	// the boundary only moves on whole days
	rec := d.LastRecord()
	assert.Equal(t, int64(0), rec.DayStart)
	assert.Equal(t, fixedpoint.DivInt64(genesisEmission, 2).String(), rec.PartialEmission.String())

	// accruing again at the same instant emits nothing more
	delta, err = d.Accrue(ownerAccount, domain.DayMillis/2, supply)
	require.NoError(t, err)
	assert.Equal(t, int64(0), delta.Int64())
}

func TestAccrueZeroSupplyAdvancesBoundary(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)

	delta, err := d.Accrue(ownerAccount, 5*domain.DayMillis, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), delta.Int64())

	// the idle period is skipped, not back-paid, and the emission does
	// not decay across it
	rec := d.LastRecord()
	assert.Equal(t, int64(5*domain.DayMillis), rec.DayStart)
	assert.Equal(t, genesisEmission.String(), rec.DayEmission.String())
	assert.Equal(t, int64(0), d.AccPerShare().Int64())
}

func TestSettleAndResync(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	supply := big.NewInt(10_000_000_000)

	_, err := d.Accrue(ownerAccount, domain.DayMillis, supply)
	require.NoError(t, err)

	// the sole holder of the full supply realizes the whole emission
	require.NoError(t, d.SettleAccount(ownerAccount, holder, supply))
	assert.Equal(t, genesisEmission.String(), d.RewardOf(holder).String())

	// settling again with no new accrual realizes nothing
	require.NoError(t, d.ResyncDebt(ownerAccount, holder, supply))
	require.NoError(t, d.SettleAccount(ownerAccount, holder, supply))
	assert.Equal(t, genesisEmission.String(), d.RewardOf(holder).String())
}

func TestSettleProRata(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	supply := big.NewInt(10_000_000_000)

	_, err := d.Accrue(ownerAccount, domain.DayMillis, supply)
	require.NoError(t, err)

	// a quarter of the supply earns a quarter of the emission
	quarter := fixedpoint.DivInt64(supply, 4)
	require.NoError(t, d.SettleAccount(ownerAccount, holder, quarter))
	assert.Equal(t, fixedpoint.DivInt64(genesisEmission, 4).String(), d.RewardOf(holder).String())
}

func TestOwnerGating(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)

	_, err := d.Accrue(stranger, domain.DayMillis, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)
	assert.ErrorIs(t, d.SettleAccount(stranger, holder, big.NewInt(1)), domain.ErrOnlyOwnerAccess)
	assert.ErrorIs(t, d.ResyncDebt(stranger, holder, big.NewInt(1)), domain.ErrOnlyOwnerAccess)
}

func TestTransferOwnership(t *testing.T) {
	d := reward.New(ownerAccount, genesisEmission, 0)
	require.NoError(t, d.TransferOwnership(ownerAccount, stranger))

	_, err := d.Accrue(ownerAccount, 1, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerAccess)
	_, err = d.Accrue(stranger, 1, big.NewInt(1))
	assert.NoError(t, err)
}
