package trust

import (
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type (
	// TrustScoreParams are coefficients of the trust score formula.
	TrustScoreParams struct {
		BaseScore              int64
		RatingMultiplier       int64
		StakeAmountDenominator int64
		MinStakeDays           int64
		RatingFloorDenominator int64
		DenomMultiplier        int64
	}

	// Config is the full Trust contract configuration.
	Config struct {
		Admin            util.Uint160
		Maintainer       util.Uint160
		StakingContract  util.Uint160
		CommerceCodeHash util.Uint256
		ReviewInterval   int64
		MaxStakedTokens  int64
		MaxStakedDays    int64
		MaxRating        int64
		Params           TrustScoreParams
	}

	// TrustData is the raw reputation state of a peer.
	TrustData struct {
		StakeDays       int64
		StakeAmount     int64
		PrevStakeAmount int64
		Rating          int64
	}

	// TrustInfo is a peer's reputation record.
	TrustInfo struct {
		Score int64
		Data  TrustData
	}

	// PendingReview is an expiring invitation for a reviewer to review a
	// peer after a completed order.
	PendingReview struct {
		Peer      util.Uint160
		Reviewer  util.Uint160
		Commerce  util.Uint160
		OrderID   int64
		ExpiresAt int64
	}
)
