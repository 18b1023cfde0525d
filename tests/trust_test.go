package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/swiftprotocol/marketplace-contract/common"
	"github.com/swiftprotocol/marketplace-contract/rpc/commerce"
	"github.com/swiftprotocol/marketplace-contract/rpc/trust"
)

// completeStandardOrder drives an order through shipping to completion, which
// opens pending review slots on the trust contract.
func (m *marketplace) completeStandardOrder(t *testing.T, orderID int64) {
	m.commerce.Invoke(t, stackitem.Null{}, "updateOrder",
		orderID, commerce.StatusShipped, []any{"", ""})
	m.commerce.Invoke(t, stackitem.Null{}, "completeOrder", orderID)
}

func TestTrustDeploy(t *testing.T) {
	m := newMarketplace(t, dayMS)

	m.trust.Invoke(t, stackitem.Make(common.Version), "version")

	s, err := m.trust.TestInvoke(t, "getConfig")
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)

	admin, err := fields[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, m.e.CommitteeHash.BytesBE(), admin)

	interval, err := fields[4].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, dayMS, interval.Int64())
}

func TestTrustCalculateScore(t *testing.T) {
	m := newMarketplace(t, dayMS)

	// 1000 whole tokens staked over 20 days with rating 4:
	// 500 + 25*4 + 1000/250*20 - 14*(4/10) = 674.4 whole points.
	m.trust.Invoke(t, stackitem.Make(674_400_000_000_000), "calculateScore",
		int64(20), int64(1000*denomMultiplier), int64(4))

	t.Run("clamped to zero", func(t *testing.T) {
		m.trust.Invoke(t, stackitem.Make(0), "calculateScore",
			int64(0), int64(0), int64(-100))
	})

	t.Run("clamped to the maximum", func(t *testing.T) {
		m.trust.Invoke(t, stackitem.Make(trust.MaxScore), "calculateScore",
			int64(maxStakedDays), int64(maxStakedTokens), int64(0))
	})

	t.Run("stake capped", func(t *testing.T) {
		s1, err := m.trust.TestInvoke(t, "calculateScore",
			int64(10), int64(maxStakedTokens), int64(0))
		require.NoError(t, err)
		s2, err := m.trust.TestInvoke(t, "calculateScore",
			int64(10), int64(maxStakedTokens*2), int64(0))
		require.NoError(t, err)
		require.Equal(t, s1.Top().BigInt(), s2.Top().BigInt())
	})
}

func TestTrustReview(t *testing.T) {
	m := newMarketplace(t, dayMS)
	peer := randomUint160()

	testInvokeFail(t, m.trust, trust.TrustNotFoundError, "getTrustInfo", peer)

	m.trust.InvokeFail(t, "unsupported review result", "review", peer, int64(2))
	m.trust.InvokeFail(t, "unsupported review result", "review", peer, int64(0))

	// An unsolicited review is accepted and creates the record.
	m.trust.Invoke(t, stackitem.Null{}, "review", peer, trust.ThumbsUp)

	s, err := m.trust.TestInvoke(t, "getTrustInfo", peer)
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)
	score, err := fields[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 523_600_000_000_000, score.Int64())

	data := fields[1].Value().([]stackitem.Item)
	rating, err := data[3].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1, rating.Int64())

	t.Run("thumbs down", func(t *testing.T) {
		other := randomUint160()
		m.trust.Invoke(t, stackitem.Null{}, "review", other, trust.ThumbsDown)

		s, err := m.trust.TestInvoke(t, "getTrustInfo", other)
		require.NoError(t, err)
		fields := s.Top().Item().Value().([]stackitem.Item)
		score, err := fields[0].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, 476_400_000_000_000, score.Int64())
	})
}

func TestTrustPendingReviewFlow(t *testing.T) {
	m := newMarketplace(t, dayMS)
	buyer := m.e.NewAccount(t)

	m.trust.InvokeFail(t, trust.InvalidContractError, "registerPendingReview",
		randomUint160(), randomUint160(), int64(1))

	m.standardListing(t, 1)
	m.createStandardOrder(t, buyer, 1, 1)
	m.createStandardOrder(t, buyer, 1, 2)

	m.completeStandardOrder(t, 1)

	// One slot per side: the buyer reviews the admin and vice versa.
	s, err := m.trust.TestInvoke(t, "getPendingReview", m.e.CommitteeHash)
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)
	reviewer, err := fields[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, buyer.ScriptHash().BytesBE(), reviewer)
	orderID, err := fields[3].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1, orderID.Int64())

	s, err = m.trust.TestInvoke(t, "pendingReviewsByReviewer", m.e.CommitteeHash)
	require.NoError(t, err)
	require.Len(t, s.Top().Item().Value().([]stackitem.Item), 1)

	// The same peers cannot be registered again while slots are live.
	m.commerce.Invoke(t, stackitem.Null{}, "updateOrder",
		int64(2), commerce.StatusShipped, []any{"", ""})
	m.commerce.InvokeFail(t, trust.AwaitingReviewError, "completeOrder", int64(2))

	// Reviews settle the slots and free the peers for new registrations.
	m.trust.Invoke(t, stackitem.Null{}, "review", m.e.CommitteeHash, trust.ThumbsUp)
	m.trust.Invoke(t, stackitem.Null{}, "review", buyer.ScriptHash(), trust.ThumbsUp)

	testInvokeFail(t, m.trust, trust.PendingNotFoundError,
		"getPendingReview", m.e.CommitteeHash)
	m.trust.Invoke(t, stackitem.NewArray([]stackitem.Item{}),
		"pendingReviewsByReviewer", m.e.CommitteeHash)
	m.trust.Invoke(t, stackitem.NewArray([]stackitem.Item{}),
		"pendingReviewsByReviewer", buyer.ScriptHash())

	m.commerce.Invoke(t, stackitem.Null{}, "completeOrder", int64(2))
}

func TestTrustPendingReviewExpiry(t *testing.T) {
	m := newMarketplace(t, 1) // millisecond lifetime, expires with the next block
	buyer := m.e.NewAccount(t)

	m.standardListing(t, 1)
	m.createStandardOrder(t, buyer, 1, 1)
	m.createStandardOrder(t, buyer, 1, 2)

	m.completeStandardOrder(t, 1)
	m.e.AddNewBlock(t)

	testInvokeFail(t, m.trust, trust.PendingNotFoundError,
		"getPendingReview", buyer.ScriptHash())
	m.trust.Invoke(t, stackitem.NewArray([]stackitem.Item{}),
		"pendingReviewsByReviewer", buyer.ScriptHash())

	// Expired slots do not block a new registration, they are replaced.
	m.completeStandardOrder(t, 2)
}

func TestTrustUpdateStakingInfo(t *testing.T) {
	m := newMarketplace(t, dayMS)
	acc := m.e.NewAccount(t)
	peer := randomUint160()

	const stake = 500 * denomMultiplier

	m.trust.WithSigners(acc).InvokeFail(t, trust.UnauthorizedError,
		"updateStakingInfo", peer)
	m.trust.InvokeFail(t, trust.StakingNotFoundError, "updateStakingInfo", peer)

	m.staking.Invoke(t, stackitem.Null{}, "setStake", peer, int64(stake))
	m.trust.InvokeFail(t, trust.TrustNotFoundError, "updateStakingInfo", peer)

	m.trust.Invoke(t, stackitem.Null{}, "review", peer, trust.ThumbsUp)
	m.trust.Invoke(t, stackitem.Null{}, "updateStakingInfo", peer)

	// 500 + 25 + 500/250*1 - 14*(1/10) = 525.6 whole points.
	s, err := m.trust.TestInvoke(t, "getTrustInfo", peer)
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)
	score, err := fields[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 525_600_000_000_000, score.Int64())

	data := fields[1].Value().([]stackitem.Item)
	days, err := data[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 1, days.Int64())

	m.trust.Invoke(t, stackitem.Null{}, "updateStakingInfo", peer)

	s, err = m.trust.TestInvoke(t, "getTrustInfo", peer)
	require.NoError(t, err)
	data = s.Top().Item().Value().([]stackitem.Item)[1].Value().([]stackitem.Item)
	days, err = data[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 2, days.Int64())

	t.Run("stake decrease resets the day counter", func(t *testing.T) {
		m.staking.Invoke(t, stackitem.Null{}, "setStake", peer, int64(stake-denomMultiplier))
		m.trust.Invoke(t, stackitem.Null{}, "updateStakingInfo", peer)

		s, err := m.trust.TestInvoke(t, "getTrustInfo", peer)
		require.NoError(t, err)
		data := s.Top().Item().Value().([]stackitem.Item)[1].Value().([]stackitem.Item)
		days, err := data[0].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, 0, days.Int64())

		m.trust.Invoke(t, stackitem.Make(stake-denomMultiplier), "stakeAmount", peer)
	})

	m.trust.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(peer.BytesBE()),
	}), "accounts")
}

func TestTrustUpdateConfig(t *testing.T) {
	m := newMarketplace(t, dayMS)
	acc := m.e.NewAccount(t)

	cfg := func(interval int64) []any {
		return []any{
			m.e.CommitteeHash,
			m.e.CommitteeHash,
			m.staking.Hash,
			randomBytes(32),
			interval,
			int64(maxStakedTokens),
			int64(maxStakedDays),
			int64(maxRating),
			[]any{
				int64(baseScore),
				int64(ratingMultiplier),
				int64(stakeAmountDenominator),
				int64(minStakeDays),
				int64(ratingFloorDenominator),
				int64(denomMultiplier),
			},
		}
	}

	m.trust.WithSigners(acc).InvokeFail(t, trust.UnauthorizedError,
		"updateConfig", cfg(2*dayMS))
	m.trust.InvokeFail(t, "non-positive review interval", "updateConfig", cfg(0))

	m.trust.Invoke(t, stackitem.Null{}, "updateConfig", cfg(2*dayMS))

	s, err := m.trust.TestInvoke(t, "getConfig")
	require.NoError(t, err)
	interval, err := s.Top().Item().Value().([]stackitem.Item)[4].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 2*dayMS, interval.Int64())
}
