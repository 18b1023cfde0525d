// Package commerceconst contains constants of the Commerce contract shared
// between the contract itself and off-chain clients.
package commerceconst

const (
	// ErrUnauthorized is returned when the caller lacks the role or
	// relationship an operation requires.
	ErrUnauthorized = "unauthorized"

	// ErrListingNotFound is returned if the referenced listing is missing.
	ErrListingNotFound = "listing not found"

	// ErrOrderNotFound is returned if the referenced order is missing.
	ErrOrderNotFound = "order not found"

	// ErrInvalidOrder is returned when order items reference a listing or a
	// listing option that does not exist at evaluation time.
	ErrInvalidOrder = "invalid order"

	// ErrNotEnoughImages is returned on an attempt to store a listing
	// without a single image.
	ErrNotEnoughImages = "not enough images"

	// ErrActiveOrder is returned when a listing mutation is blocked by a
	// live order referencing it.
	ErrActiveOrder = "at least one active order"

	// ErrMissingDenom is returned when a payment or a priced listing option
	// uses a token other than the configured settlement token.
	ErrMissingDenom = "missing settlement token denom"

	// ErrNoFunds is returned when the attached payment does not exactly
	// match the evaluated order cost, or when a withdrawal exceeds the
	// withdrawable surplus.
	ErrNoFunds = "payment does not match cost"

	// ErrStatusRegress is returned on an attempt to move an order to an
	// earlier fulfilment status.
	ErrStatusRegress = "new status cannot be a previous status"
)
