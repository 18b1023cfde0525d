// Package reviewresult contains review verdicts accepted by the Trust
// contract.
package reviewresult

// Type is an enumeration for review verdicts. The numeric value of a verdict
// is the delta it applies to the rating of the reviewed peer.
type Type int

const (
	// ThumbsUp is a positive verdict.
	ThumbsUp Type = 1

	// ThumbsDown is a negative verdict.
	ThumbsDown Type = -1
)
