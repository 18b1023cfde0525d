package tests

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

func randomUint160() util.Uint160 {
	var u util.Uint160
	copy(u[:], randomBytes(util.Uint160Size))
	return u
}

// testAttributes builds a listing attributes argument with a unique name and
// a single image.
func testAttributes() []any {
	return []any{"listing-" + uuid.NewString(), "test listing", []any{"https://example.com/front.png"}}
}

// sizeOption builds a listing option argument with a single "XL" item priced
// at cost atomics of the given token. An empty token makes the item free.
func sizeOption(token any, cost int64) []any {
	return []any{
		[]any{int64(1), "size", "clothing size", []any{
			[]any{"XL", []any{token, cost}},
		}},
	}
}

// xlSelection builds an order option argument selecting the "XL" item of
// option 1.
func xlSelection(token any, cost int64) []any {
	return []any{int64(1), []any{"XL", []any{token, cost}}}
}

// orderItem builds a single order item argument.
func orderItem(listingID, amount int64, selections []any) []any {
	return []any{listingID, selections, amount}
}

// createListing adds a listing with the standard test attributes and asserts
// the assigned identifier.
func createListing(t *testing.T, c *neotest.ContractInvoker, expectedID int64,
	price int64, options []any) {
	c.Invoke(t, stackitem.Make(expectedID), "createListing",
		true, price, testAttributes(), options)
}

// testInvokeFail runs a read-only method and requires it to fault with the
// given substring in the exception.
func testInvokeFail(t *testing.T, c *neotest.ContractInvoker, msg string,
	method string, args ...any) {
	_, err := c.TestInvoke(t, method, args...)
	require.Error(t, err)
	require.Contains(t, err.Error(), msg)
}
