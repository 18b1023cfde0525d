/*
Package commerce contains implementation of Commerce contract deployed in Neo
chain.

Commerce contract stores a listing catalog of a single store and manages the
lifecycle of escrowed orders paid for with the configured NEP-17 settlement
token. Payments are locked on the contract account until the order is
cancelled, refunded or completed. Completion releases the payment into the
withdrawable surplus and registers pending reviews between the buyer and the
store admins in the paired Trust contract.

# Contract notifications

ListingCreated notification. This notification is produced when a store admin
adds a new listing to the catalog.

	ListingCreated:
	  - name: listingID
	    type: Integer

ListingUpdated notification. This notification is produced when a store admin
replaces data of an existing listing.

	ListingUpdated:
	  - name: listingID
	    type: Integer

ListingDeleted notification. This notification is produced when a store admin
removes a listing from the catalog.

	ListingDeleted:
	  - name: listingID
	    type: Integer

OrderCreated notification. This notification is produced when a buyer pays
for a new order, either with a direct transfer or through OnNEP17Payment.

	OrderCreated:
	  - name: orderID
	    type: Integer
	  - name: buyer
	    type: Hash160
	  - name: cost
	    type: Integer

OrderUpdated notification. This notification is produced when a store admin
moves an order to a new fulfilment status.

	OrderUpdated:
	  - name: orderID
	    type: Integer
	  - name: status
	    type: Integer

OrderCancelled notification. This notification is produced when a buyer
cancels an order that has not been processed yet.

	OrderCancelled:
	  - name: orderID
	    type: Integer
	  - name: buyer
	    type: Hash160

OrderCompleted notification. This notification is produced when a store admin
completes a shipped order.

	OrderCompleted:
	  - name: orderID
	    type: Integer
	  - name: buyer
	    type: Hash160

OrderRefunded notification. This notification is produced when a store admin
refunds an order out of the regular flow.

	OrderRefunded:
	  - name: orderID
	    type: Integer
	  - name: buyer
	    type: Hash160

Withdraw notification. This notification is produced when a store admin sweeps
the withdrawable settlement token surplus.

	Withdraw:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package commerce

/*
Contract storage model.

# Summary
Current conventions:
 <id>: variable-length big-endian encoding of a positive integer identifier

Key-value storage format:
 - 'adminList' -> std.Serialize([]interop.Hash160)
   store admin accounts
 - 'settlementScriptHash' -> interop.Hash160
   NEP-17 settlement token reference
 - 'withdrawScriptHash' -> interop.Hash160
   account receiving withdrawn surplus
 - 'trustScriptHash' -> interop.Hash160
   Trust contract reference
 - 'marketing' -> std.Serialize(Marketing)
   storefront presentation data
 - 'listingIDCounter' -> int
   last assigned listing identifier
 - 'orderIDCounter' -> int
   last assigned order identifier
 - 'x<id>' -> std.Serialize(Listing)
   catalog listings
 - 'y<id>' -> std.Serialize(Order)
   live orders, removed on cancellation, refund and completion

# Identifiers
Listing and order identifiers come from independent counters starting at 1.
An identifier is never reused after its record is removed.

# Escrow
The contract does not store balances. The locked amount is derived from live
orders by evaluating their cost at current catalog prices, which is why
listings referenced by live orders cannot be modified or deleted. Whatever
the settlement token reports above the locked amount is the withdrawable
surplus.
*/
