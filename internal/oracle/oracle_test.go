package oracle_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/mocks"
	"github.com/stableflow/reserve-engine/internal/oracle"
)

var (
	ownerAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	stranger     = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func TestUpdateAndRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().NowMillis().Return(int64(12345))

	o := oracle.NewMemoryOracle(ownerAccount, clock)
	assert.Equal(t, int64(0), o.CollateralPrice().Int64())
	assert.Equal(t, int64(0), o.SyntheticPrice().Int64())

	require.NoError(t, o.Update(ownerAccount, big.NewInt(100_000_000), big.NewInt(99_000_000)))
	assert.Equal(t, int64(100_000_000), o.CollateralPrice().Int64())
	assert.Equal(t, int64(99_000_000), o.SyntheticPrice().Int64())
	assert.Equal(t, int64(12345), o.LastUpdate())
}

func TestUpdateRejectsNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := oracle.NewMemoryOracle(ownerAccount, mocks.NewMockClock(ctrl))
	assert.ErrorIs(t, o.Update(ownerAccount, big.NewInt(-1), big.NewInt(1)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, o.Update(ownerAccount, big.NewInt(1), big.NewInt(-1)), domain.ErrInvalidAmount)
}

func TestUpdateOwnerGated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().NowMillis().Return(int64(1)).AnyTimes()

	o := oracle.NewMemoryOracle(ownerAccount, clock)
	assert.ErrorIs(t, o.Update(stranger, big.NewInt(1), big.NewInt(1)), domain.ErrOnlyOwnerAccess)

	require.NoError(t, o.TransferOwnership(ownerAccount, stranger))
	assert.NoError(t, o.Update(stranger, big.NewInt(1), big.NewInt(1)))
}

func TestPricesAreCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().NowMillis().Return(int64(1))

	o := oracle.NewMemoryOracle(ownerAccount, clock)
	require.NoError(t, o.Update(ownerAccount, big.NewInt(10), big.NewInt(20)))

	o.CollateralPrice().SetInt64(999)
	assert.Equal(t, int64(10), o.CollateralPrice().Int64())
}
