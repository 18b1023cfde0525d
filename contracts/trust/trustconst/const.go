// Package trustconst contains constants of the Trust contract shared between
// the contract itself and off-chain clients.
package trustconst

const (
	// ErrUnauthorized is returned when the caller lacks the role an
	// operation requires.
	ErrUnauthorized = "unauthorized"

	// ErrInvalidContract is returned when RegisterPendingReview is invoked
	// by a contract whose code hash differs from the configured commerce
	// code hash.
	ErrInvalidContract = "invalid contract"

	// ErrAwaitingReview is returned on an attempt to register a pending
	// review for a peer that already has a live one.
	ErrAwaitingReview = "already awaiting review"

	// ErrStakingNotFound is returned when the staking contract reports no
	// stake for the peer.
	ErrStakingNotFound = "staking account not found"

	// ErrTrustNotFound is returned when the referenced peer has no trust
	// record yet.
	ErrTrustNotFound = "trust account not found"

	// ErrPendingNotFound is returned when the referenced peer has no live
	// pending review.
	ErrPendingNotFound = "pending review not found"
)
