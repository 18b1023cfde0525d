package trust

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/swiftprotocol/marketplace-contract/common"
	"github.com/swiftprotocol/marketplace-contract/contracts/trust/reviewresult"
	cst "github.com/swiftprotocol/marketplace-contract/contracts/trust/trustconst"
)

type (
	// TrustScoreParams are coefficients of the trust score formula.
	TrustScoreParams struct {
		BaseScore              int
		RatingMultiplier       int
		StakeAmountDenominator int
		MinStakeDays           int
		RatingFloorDenominator int
		// DenomMultiplier is the amount of minimal staking token units per
		// whole token.
		DenomMultiplier int
	}

	// Config is the full Trust contract configuration.
	Config struct {
		// Admin replaces the configuration.
		Admin interop.Hash160
		// Maintainer drives periodic staking refreshes.
		Maintainer interop.Hash160
		// StakingContract answers stakedValue queries.
		StakingContract interop.Hash160
		// CommerceCodeHash is the SHA-256 hash of the NEF of commerce
		// contracts allowed to register pending reviews.
		CommerceCodeHash interop.Hash256
		// ReviewInterval is the lifetime of a pending review in
		// milliseconds.
		ReviewInterval int
		// MaxStakedTokens caps the stake amount fed into the score formula.
		MaxStakedTokens int
		// MaxStakedDays caps the stake day count fed into the score formula.
		MaxStakedDays int
		// MaxRating is reserved for a rating cap, reviews do not apply it
		// yet.
		MaxRating int
		Params    TrustScoreParams
	}

	// TrustData is the raw reputation state of a peer.
	TrustData struct {
		// StakeDays counts consecutive staking refreshes without a stake
		// decrease.
		StakeDays       int
		StakeAmount     int
		PrevStakeAmount int
		// Rating is the running sum of review verdicts.
		Rating int
	}

	// TrustInfo is a peer's reputation record: raw state plus the score
	// derived from it.
	TrustInfo struct {
		// Score is a fixed-point value with 12 decimals, clamped into
		// [0, 1500] whole points.
		Score int
		Data  TrustData
	}

	// PendingReview is an expiring invitation for a reviewer to review a
	// peer after a completed order.
	PendingReview struct {
		Peer     interop.Hash160
		Reviewer interop.Hash160
		// Commerce is the commerce contract that registered the review.
		Commerce interop.Hash160
		OrderID  int
		// ExpiresAt is a wall-clock timestamp in milliseconds.
		ExpiresAt int
	}
)

const (
	configKey = "config"

	trustKeyPrefix    = 't'
	pendingKeyPrefix  = 'p'
	reviewerKeyPrefix = 'r'

	// scorePrecision is the atomic unit of the trust score, 12 decimals.
	scorePrecision = 1_000_000_000_000

	// maxScore is the upper clamp of the trust score, 1500 whole points.
	maxScore = 1500 * scorePrecision
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	cfg := data.(Config)
	validateConfig(cfg)
	common.SetSerialized(ctx, configKey, cfg)

	runtime.Log("trust contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("trust contract updated")
}

// UpdateConfig replaces the whole contract configuration. It can be invoked
// by the configured admin only.
func UpdateConfig(cfg Config) {
	ctx := storage.GetContext()

	current := getConfig(ctx)
	if !runtime.CheckWitness(current.Admin) {
		panic(cst.ErrUnauthorized)
	}

	validateConfig(cfg)
	common.SetSerialized(ctx, configKey, cfg)

	runtime.Log("configuration has been updated")
}

// RegisterPendingReview opens an expiring review slot: reviewer is invited to
// review peer in connection with the given order. It can be invoked by a
// contract whose NEF hashes to the configured commerce code hash only, no
// direct user invocations.
//
// A peer holds at most one live slot. A second registration is rejected while
// the first is live, an expired slot is silently replaced.
func RegisterPendingReview(peer, reviewer interop.Hash160, orderID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	caller := runtime.GetCallingScriptHash()
	checkCommerceCaller(cfg, caller)

	if len(peer) != interop.Hash160Len || len(reviewer) != interop.Hash160Len {
		panic("incorrect length of peer script hash")
	}

	now := runtime.GetTime()

	data := storage.Get(ctx, pendingKey(peer))
	if data != nil {
		pending := std.Deserialize(data.([]byte)).(PendingReview)
		if now < pending.ExpiresAt {
			panic(cst.ErrAwaitingReview)
		}
		removePending(ctx, pending)
	}

	pending := PendingReview{
		Peer:      peer,
		Reviewer:  reviewer,
		Commerce:  caller,
		OrderID:   orderID,
		ExpiresAt: now + cfg.ReviewInterval,
	}

	common.SetSerialized(ctx, pendingKey(peer), pending)
	storage.Put(ctx, reviewerKey(reviewer, peer), peer)

	runtime.Notify("PendingReviewRegistered", peer, reviewer, orderID)
}

// Review applies the given verdict to the rating of the peer, recomputes the
// trust score and settles the peer's pending review slot if there is one.
// Anyone can invoke it, a review is accepted with or without an invitation.
//
// A peer reviewed for the first time gets a record with zeroed staking state.
func Review(peer interop.Hash160, result reviewresult.Type) {
	if len(peer) != interop.Hash160Len {
		panic("incorrect length of peer script hash")
	}
	if result != reviewresult.ThumbsUp && result != reviewresult.ThumbsDown {
		panic("unsupported review result")
	}

	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	info := TrustInfo{}
	data := storage.Get(ctx, trustKey(peer))
	if data != nil {
		info = std.Deserialize(data.([]byte)).(TrustInfo)
	}

	info.Data.Rating += int(result)
	info.Score = calculateScore(cfg, info.Data)
	common.SetSerialized(ctx, trustKey(peer), info)

	pdata := storage.Get(ctx, pendingKey(peer))
	if pdata != nil {
		removePending(ctx, std.Deserialize(pdata.([]byte)).(PendingReview))
	}

	runtime.Notify("ReviewSubmitted", peer, int(result))
}

// UpdateStakingInfo refreshes the staking state of the peer from the
// configured staking contract and recomputes the trust score. It can be
// invoked by the configured maintainer only, once per day by convention.
//
// The consecutive day counter grows while the stake does not shrink between
// refreshes and resets to zero otherwise.
func UpdateStakingInfo(peer interop.Hash160) {
	if len(peer) != interop.Hash160Len {
		panic("incorrect length of peer script hash")
	}

	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !runtime.CheckWitness(cfg.Maintainer) {
		panic(cst.ErrUnauthorized)
	}

	current := contract.Call(cfg.StakingContract, "stakedValue",
		contract.ReadOnly, peer).(int)
	if current == 0 {
		panic(cst.ErrStakingNotFound)
	}

	info := getTrustInfo(ctx, peer)

	if info.Data.PrevStakeAmount <= current {
		// Not ++: the NeoVM compiler only stores inc/dec results for plain
		// identifiers, a struct field target leaves the value on the stack.
		info.Data.StakeDays = info.Data.StakeDays + 1
	} else {
		info.Data.StakeDays = 0
	}
	info.Data.PrevStakeAmount = info.Data.StakeAmount
	info.Data.StakeAmount = current

	info.Score = calculateScore(cfg, info.Data)
	common.SetSerialized(ctx, trustKey(peer), info)

	runtime.Notify("StakingInfoUpdated", peer, current)
}

// GetConfig returns the current contract configuration.
func GetConfig() Config {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx)
}

// GetTrustInfo returns the reputation record of the peer. It panics if the
// peer has never been reviewed or staking-refreshed.
func GetTrustInfo(peer interop.Hash160) TrustInfo {
	ctx := storage.GetReadOnlyContext()
	return getTrustInfo(ctx, peer)
}

// StakeAmount returns the stake of the peer as of the last staking refresh.
// It panics if the peer has no reputation record.
func StakeAmount(peer interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getTrustInfo(ctx, peer).Data.StakeAmount
}

// Accounts returns all peers with a reputation record.
func Accounts() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	result := []interop.Hash160{}
	it := storage.Find(ctx, []byte{trustKeyPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(interop.Hash160))
	}

	return result
}

// GetPendingReview returns the live pending review slot of the peer. An
// expired slot counts as absent.
func GetPendingReview(peer interop.Hash160) PendingReview {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, pendingKey(peer))
	if data == nil {
		panic(cst.ErrPendingNotFound)
	}

	pending := std.Deserialize(data.([]byte)).(PendingReview)
	if runtime.GetTime() >= pending.ExpiresAt {
		panic(cst.ErrPendingNotFound)
	}

	return pending
}

// PendingReviewsByReviewer returns all live pending review slots assigned to
// the given reviewer. Expired slots are filtered out.
func PendingReviewsByReviewer(reviewer interop.Hash160) []PendingReview {
	ctx := storage.GetReadOnlyContext()
	now := runtime.GetTime()

	result := []PendingReview{}
	it := storage.Find(ctx, reviewerIndexPrefix(reviewer), storage.ValuesOnly)
	for iterator.Next(it) {
		peer := iterator.Value(it).(interop.Hash160)

		data := storage.Get(ctx, pendingKey(peer))
		if data == nil {
			continue
		}
		pending := std.Deserialize(data.([]byte)).(PendingReview)
		if now >= pending.ExpiresAt || !common.BytesEqual(pending.Reviewer, reviewer) {
			continue
		}

		result = append(result, pending)
	}

	return result
}

// CalculateScore evaluates the trust score formula for the given raw inputs
// without touching any stored record. The result is a fixed-point value with
// 12 decimals.
func CalculateScore(stakeDays, stakeAmount, rating int) int {
	ctx := storage.GetReadOnlyContext()
	cfg := getConfig(ctx)
	return calculateScore(cfg, TrustData{
		StakeDays:   stakeDays,
		StakeAmount: stakeAmount,
		Rating:      rating,
	})
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// calculateScore is the trust score formula. Staked amount and day count are
// capped by the configured maxima before use, the result is clamped into
// [0, maxScore]. All arithmetic is integer at scorePrecision atomics.
func calculateScore(cfg Config, data TrustData) int {
	amount := data.StakeAmount
	if amount > cfg.MaxStakedTokens {
		amount = cfg.MaxStakedTokens
	}
	days := data.StakeDays
	if days > cfg.MaxStakedDays {
		days = cfg.MaxStakedDays
	}

	p := cfg.Params
	wholeTokens := amount / p.DenomMultiplier

	score := p.BaseScore*scorePrecision +
		p.RatingMultiplier*data.Rating*scorePrecision +
		wholeTokens*scorePrecision/p.StakeAmountDenominator*days -
		p.MinStakeDays*(data.Rating*scorePrecision/p.RatingFloorDenominator)

	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// checkCommerceCaller panics unless the calling contract's NEF hashes to the
// configured commerce code hash. Direct (non-contract) invocations have no
// calling contract and are rejected the same way.
func checkCommerceCaller(cfg Config, caller interop.Hash160) {
	c := management.GetContract(caller)
	if c == nil {
		panic(cst.ErrInvalidContract)
	}
	if !common.BytesEqual(crypto.Sha256(c.NEF), cfg.CommerceCodeHash) {
		panic(cst.ErrInvalidContract)
	}
}

func validateConfig(cfg Config) {
	if len(cfg.Admin) != interop.Hash160Len ||
		len(cfg.Maintainer) != interop.Hash160Len ||
		len(cfg.StakingContract) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if len(cfg.CommerceCodeHash) != interop.Hash256Len {
		panic("incorrect length of commerce code hash")
	}
	if cfg.ReviewInterval <= 0 {
		panic("non-positive review interval")
	}
	if cfg.Params.StakeAmountDenominator == 0 ||
		cfg.Params.RatingFloorDenominator == 0 ||
		cfg.Params.DenomMultiplier == 0 {
		panic("zero denominator in score params")
	}
}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	return std.Deserialize(data.([]byte)).(Config)
}

func getTrustInfo(ctx storage.Context, peer interop.Hash160) TrustInfo {
	data := storage.Get(ctx, trustKey(peer))
	if data == nil {
		panic(cst.ErrTrustNotFound)
	}
	return std.Deserialize(data.([]byte)).(TrustInfo)
}

// removePending drops a pending review slot together with its reviewer index
// entry.
func removePending(ctx storage.Context, pending PendingReview) {
	storage.Delete(ctx, pendingKey(pending.Peer))
	storage.Delete(ctx, reviewerKey(pending.Reviewer, pending.Peer))
}

func trustKey(peer interop.Hash160) []byte {
	return append([]byte{trustKeyPrefix}, peer...)
}

func pendingKey(peer interop.Hash160) []byte {
	return append([]byte{pendingKeyPrefix}, peer...)
}

func reviewerIndexPrefix(reviewer interop.Hash160) []byte {
	return append([]byte{reviewerKeyPrefix}, reviewer...)
}

func reviewerKey(reviewer, peer interop.Hash160) []byte {
	return append(reviewerIndexPrefix(reviewer), peer...)
}
