package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

var (
	refundPrefix   = []byte{0x01}
	withdrawPrefix = []byte{0x02}
)

// RefundTransferDetails marks a settlement token transfer as an order refund.
func RefundTransferDetails(orderID int) []byte {
	return append(refundPrefix, convert.ToBytes(orderID)...)
}

// WithdrawTransferDetails marks a settlement token transfer as a sweep of the
// withdrawable surplus.
func WithdrawTransferDetails() []byte {
	return withdrawPrefix
}

// TransferTokens calls a NEP-17 transfer on the given token contract and
// panics if the token reports failure. Details travel as the transfer data
// argument.
func TransferTokens(token, from, to interop.Hash160, amount int, details []byte) {
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, details).(bool)
	if !ok {
		panic("settlement token transfer failed")
	}
}
