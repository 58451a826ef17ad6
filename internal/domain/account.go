package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Account identifies a holder of share or synthetic tokens. The host is
// responsible for authenticating callers; the engine only compares
// identities.
type Account = common.Address

// ZeroAccount is the empty account, used as the from/to side of mint and
// burn events.
var ZeroAccount = Account{}

// ParseAccount parses a hex address string into an Account
func ParseAccount(s string) (Account, bool) {
	if !common.IsHexAddress(s) {
		return ZeroAccount, false
	}
	return common.HexToAddress(s), true
}
