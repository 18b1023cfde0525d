package trust

import (
	"github.com/swiftprotocol/marketplace-contract/contracts/trust/trustconst"
)

const (
	// UnauthorizedError is returned when the caller lacks the role an
	// operation requires.
	UnauthorizedError = trustconst.ErrUnauthorized

	// InvalidContractError is returned when a pending review registration
	// comes from a contract with an unexpected code hash.
	InvalidContractError = trustconst.ErrInvalidContract

	// AwaitingReviewError is returned on a duplicate pending review
	// registration for the same peer.
	AwaitingReviewError = trustconst.ErrAwaitingReview

	// StakingNotFoundError is returned when the staking contract reports no
	// stake for the peer.
	StakingNotFoundError = trustconst.ErrStakingNotFound

	// TrustNotFoundError is returned when the peer has no trust record.
	TrustNotFoundError = trustconst.ErrTrustNotFound

	// PendingNotFoundError is returned when the peer has no live pending
	// review.
	PendingNotFoundError = trustconst.ErrPendingNotFound
)

// Review verdicts, see the reviewresult contract package.
const (
	ThumbsUp   int64 = 1
	ThumbsDown int64 = -1
)

// ScorePrecision is the amount of atomic score units per whole trust score
// point.
const ScorePrecision = 1_000_000_000_000

// MaxScore is the upper clamp of the trust score in atomic units.
const MaxScore = 1500 * ScorePrecision
