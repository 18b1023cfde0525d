/*
Package trust contains implementation of Trust contract deployed in Neo
chain.

Trust contract keeps a reputation record per peer: a running review rating,
staking state refreshed from a staking contract and a trust score derived
from both. It also manages expiring pending review slots that paired commerce
contracts open when an order completes. A review is accepted from anyone,
with or without an open slot, a slot only marks the review as solicited and
is settled by the first review of its peer.

The trust score is a fixed-point value with 12 decimals clamped into the
[0, 1500] whole-point range. It grows with the rating and with tokens staked
over consecutive days and is discounted for short-lived stakes.

# Contract notifications

PendingReviewRegistered notification. This notification is produced when a
commerce contract opens a review slot after a completed order.

	PendingReviewRegistered:
	  - name: peer
	    type: Hash160
	  - name: reviewer
	    type: Hash160
	  - name: orderID
	    type: Integer

ReviewSubmitted notification. This notification is produced when a review
verdict is applied to a peer.

	ReviewSubmitted:
	  - name: peer
	    type: Hash160
	  - name: result
	    type: Integer

StakingInfoUpdated notification. This notification is produced when the
maintainer refreshes the staking state of a peer.

	StakingInfoUpdated:
	  - name: peer
	    type: Hash160
	  - name: stakeAmount
	    type: Integer
*/
package trust

/*
Contract storage model.

# Summary
Current conventions:
 <peer>: 20-byte account script hash
 <reviewer>: 20-byte account script hash

Key-value storage format:
 - 'config' -> std.Serialize(Config)
   full contract configuration
 - 't<peer>' -> std.Serialize(TrustInfo)
   reputation records, never removed
 - 'p<peer>' -> std.Serialize(PendingReview)
   pending review slot, at most one per peer
 - 'r<reviewer><peer>' -> <peer>
   reviewer-by-reviewer index of pending review slots

# Pending reviews
The slot record and its reviewer index entry are always written and removed
together. Expired slots are not garbage-collected eagerly: reads treat them
as absent and a new registration for the same peer replaces them.

# Scores
A stored score is recomputed on every mutation of the underlying record, so
reads never compute. CalculateScore exposes the bare formula for off-chain
callers.
*/
