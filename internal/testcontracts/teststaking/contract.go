package teststaking

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetStake records the staked value of the account.
func SetStake(account interop.Hash160, amount int) {
	storage.Put(storage.GetContext(), account, amount)
}

// StakedValue returns the recorded stake of the account, zero by default.
func StakedValue(account interop.Hash160) int {
	val := storage.Get(storage.GetReadOnlyContext(), account)
	if val == nil {
		return 0
	}
	return val.(int)
}

// Verify allows the contract to witness anything in tests.
func Verify() bool {
	return true
}
