package synthetic_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/synthetic"
)

var (
	ownerAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	holder       = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	stranger     = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func TestMintAndBurn(t *testing.T) {
	tok := synthetic.NewMemoryToken(ownerAccount, domain.ShareTokenDecimals)
	assert.Equal(t, uint8(domain.ShareTokenDecimals), tok.Decimals())

	require.NoError(t, tok.Mint(ownerAccount, holder, big.NewInt(100)))
	assert.Equal(t, int64(100), tok.BalanceOf(holder).Int64())
	assert.Equal(t, int64(100), tok.TotalSupply().Int64())

	require.NoError(t, tok.Burn(ownerAccount, holder, big.NewInt(30)))
	assert.Equal(t, int64(70), tok.BalanceOf(holder).Int64())
	assert.Equal(t, int64(70), tok.TotalSupply().Int64())
}

func TestBurnExceedsBalance(t *testing.T) {
	tok := synthetic.NewMemoryToken(ownerAccount, domain.ShareTokenDecimals)
	require.NoError(t, tok.Mint(ownerAccount, holder, big.NewInt(10)))

	assert.ErrorIs(t, tok.Burn(ownerAccount, holder, big.NewInt(11)), domain.ErrInsufficientSupply)
	assert.ErrorIs(t, tok.Burn(ownerAccount, stranger, big.NewInt(1)), domain.ErrInsufficientSupply)
}

func TestInvalidAmounts(t *testing.T) {
	tok := synthetic.NewMemoryToken(ownerAccount, domain.ShareTokenDecimals)

	assert.ErrorIs(t, tok.Mint(ownerAccount, holder, big.NewInt(0)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, tok.Mint(ownerAccount, holder, big.NewInt(-1)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, tok.Burn(ownerAccount, holder, nil), domain.ErrInvalidAmount)
}

func TestOwnerGating(t *testing.T) {
	tok := synthetic.NewMemoryToken(ownerAccount, domain.ShareTokenDecimals)

	assert.ErrorIs(t, tok.Mint(stranger, holder, big.NewInt(1)), domain.ErrOnlyOwnerAccess)
	assert.ErrorIs(t, tok.Burn(stranger, holder, big.NewInt(1)), domain.ErrOnlyOwnerAccess)

	require.NoError(t, tok.TransferOwnership(ownerAccount, stranger))
	assert.NoError(t, tok.Mint(stranger, holder, big.NewInt(1)))
	assert.ErrorIs(t, tok.Mint(ownerAccount, holder, big.NewInt(1)), domain.ErrOnlyOwnerAccess)
}
