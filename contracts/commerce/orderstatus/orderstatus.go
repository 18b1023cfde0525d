// Package orderstatus contains order fulfilment statuses of the Commerce
// contract.
package orderstatus

// Type is an enumeration for order fulfilment statuses. Status ordinals are
// only allowed to grow during the lifetime of an order, completion and
// cancellation remove the order instead of assigning a terminal status.
type Type int

const (
	// Received is the initial status of every paid order.
	Received Type = 0

	// Fulfilling means the seller has started to process the order.
	Fulfilling Type = 1

	// Shipped means the order has left the seller. Only shipped orders can
	// be completed.
	Shipped Type = 2
)
