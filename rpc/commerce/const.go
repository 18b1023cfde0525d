package commerce

import (
	"github.com/swiftprotocol/marketplace-contract/contracts/commerce/commerceconst"
)

const (
	// UnauthorizedError is returned when the caller lacks the role or
	// relationship an operation requires.
	UnauthorizedError = commerceconst.ErrUnauthorized

	// ListingNotFoundError is returned if the referenced listing is missing.
	ListingNotFoundError = commerceconst.ErrListingNotFound

	// OrderNotFoundError is returned if the referenced order is missing.
	OrderNotFoundError = commerceconst.ErrOrderNotFound

	// InvalidOrderError is returned when order items reference a missing
	// listing or listing option.
	InvalidOrderError = commerceconst.ErrInvalidOrder

	// NotEnoughImagesError is returned on a listing without images.
	NotEnoughImagesError = commerceconst.ErrNotEnoughImages

	// ActiveOrderError is returned when a listing mutation is blocked by a
	// live order.
	ActiveOrderError = commerceconst.ErrActiveOrder

	// MissingDenomError is returned on a payment in a token other than the
	// settlement token.
	MissingDenomError = commerceconst.ErrMissingDenom

	// NoFundsError is returned on a payment that does not match the order
	// cost or a withdrawal above the surplus.
	NoFundsError = commerceconst.ErrNoFunds

	// StatusRegressError is returned on an order status downgrade attempt.
	StatusRegressError = commerceconst.ErrStatusRegress
)

// Order fulfilment statuses, see the orderstatus contract package.
const (
	StatusReceived   int64 = 0
	StatusFulfilling int64 = 1
	StatusShipped    int64 = 2
)
