package commerce

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/swiftprotocol/marketplace-contract/common"
	cst "github.com/swiftprotocol/marketplace-contract/contracts/commerce/commerceconst"
	"github.com/swiftprotocol/marketplace-contract/contracts/commerce/orderstatus"
)

type (
	// Coin is an amount of a concrete NEP-17 token. A Coin with an empty
	// Token field denotes an absent (free) cost on a listing option item.
	Coin struct {
		Token  interop.Hash160
		Amount int
	}

	// Attributes is the human-readable part of a listing.
	Attributes struct {
		Name        string
		Description string
		// Images must contain at least one element.
		Images []string
	}

	// ListingOptionItem is one selectable value of a listing option, priced
	// on top of the listing base price when Cost is set.
	ListingOptionItem struct {
		Name string
		Cost Coin
	}

	// ListingOption is a group of selectable values of a listing, e.g. a
	// size or a color.
	ListingOption struct {
		ID          int
		Name        string
		Description string
		Items       []ListingOptionItem
	}

	// Listing is a sellable catalog entry.
	Listing struct {
		ID         int
		Active     bool
		Price      Coin
		Attributes Attributes
		Options    []ListingOption
	}

	// OrderOption is a selection of one listing option value made by the
	// buyer.
	OrderOption struct {
		OptionID     int
		SelectedItem ListingOptionItem
	}

	// OrderItem is a single position of an order: a listing, the selected
	// option values and the quantity.
	OrderItem struct {
		ListingID int
		Options   []OrderOption
		Amount    int
	}

	// TrackingInfo is shipment tracking data attached to an order by the
	// seller. Empty fields mean there is no tracking information yet.
	TrackingInfo struct {
		Provider string
		URL      string
	}

	// Order is a buyer's escrowed purchase.
	Order struct {
		ID       int
		Buyer    interop.Hash160
		Items    []OrderItem
		Status   orderstatus.Type
		Tracking TrackingInfo
	}

	// Social is a link to a social network account of the store.
	Social struct {
		Network string
		URL     string
	}

	// Marketing is storefront presentation data. It does not participate in
	// any money-moving logic.
	Marketing struct {
		Name             string
		Copyright        string
		Logo             string
		FeaturedListings []Listing
		Socials          []Social
	}

	// Config groups addresses the contract settles against.
	Config struct {
		// SettlementToken is the only NEP-17 token accepted for listing
		// prices and order payments.
		SettlementToken interop.Hash160
		// WithdrawAddress receives the withdrawable surplus.
		WithdrawAddress interop.Hash160
		// TrustContract is the paired trust contract notified about
		// completed orders.
		TrustContract interop.Hash160
	}
)

const (
	adminListKey       = "adminList"
	settlementTokenKey = "settlementScriptHash"
	withdrawAddressKey = "withdrawScriptHash"
	trustContractKey   = "trustScriptHash"
	marketingKey       = "marketing"
	listingCounterKey  = "listingIDCounter"
	orderCounterKey    = "orderIDCounter"

	listingKeyPrefix = 'x'
	orderKeyPrefix   = 'y'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		Owner           interop.Hash160
		SettlementToken interop.Hash160
		WithdrawAddress interop.Hash160
		TrustContract   interop.Hash160
	})

	if len(args.Owner) != interop.Hash160Len ||
		len(args.SettlementToken) != interop.Hash160Len ||
		len(args.WithdrawAddress) != interop.Hash160Len ||
		len(args.TrustContract) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	common.SetSerialized(ctx, adminListKey, []interop.Hash160{args.Owner})
	storage.Put(ctx, settlementTokenKey, args.SettlementToken)
	storage.Put(ctx, withdrawAddressKey, args.WithdrawAddress)
	storage.Put(ctx, trustContractKey, args.TrustContract)

	runtime.Log("commerce contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("commerce contract updated")
}

// CreateListing adds a new catalog entry and returns its identifier.
// Identifiers are assigned by an incrementing counter starting from 1 and are
// never reused. It can be invoked by an admin only.
//
// Attributes must carry at least one image. Every option item cost, when
// present, must be denominated in the configured settlement token.
func CreateListing(active bool, price int, attributes Attributes, options []ListingOption) int {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	token := settlementToken(ctx)
	validateListing(token, attributes, options)

	listing := Listing{
		ID:         common.NextID(ctx, listingCounterKey),
		Active:     active,
		Price:      Coin{Token: token, Amount: price},
		Attributes: attributes,
		Options:    options,
	}

	common.SetSerialized(ctx, listingKey(listing.ID), listing)

	runtime.Notify("ListingCreated", listing.ID)
	return listing.ID
}

// UpdateListing replaces data of the identified listing. It can be invoked by
// an admin only and is rejected while any live order references the listing,
// since a repricing would silently invalidate escrowed funds.
func UpdateListing(id int, active bool, price int, attributes Attributes, options []ListingOption) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	requireNoActiveOrders(ctx, id)

	token := settlementToken(ctx)
	validateListing(token, attributes, options)

	listing := Listing{
		ID:         id,
		Active:     active,
		Price:      Coin{Token: token, Amount: price},
		Attributes: attributes,
		Options:    options,
	}

	common.SetSerialized(ctx, listingKey(id), listing)

	runtime.Notify("ListingUpdated", id)
}

// DeleteListing removes the identified listing. It can be invoked by an admin
// only and is rejected while any live order references the listing. The
// identifier is retired forever.
func DeleteListing(id int) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	requireNoActiveOrders(ctx, id)

	storage.Delete(ctx, listingKey(id))

	runtime.Notify("ListingDeleted", id)
}

// CreateOrder creates an order paid for with a direct settlement token
// transfer pulled from the buyer within the calling transaction. The buyer
// must witness the call. Amount must exactly match the evaluated cost of the
// items, there is no partial payment and no change-making.
//
// Returns the identifier of the new order.
func CreateOrder(buyer interop.Hash160, items []OrderItem, amount int) int {
	if len(buyer) != interop.Hash160Len {
		panic("incorrect length of buyer script hash")
	}
	common.CheckOwnerWitness(buyer)

	ctx := storage.GetContext()

	cost := evalCost(ctx, items)
	if amount != cost {
		panic(cst.ErrNoFunds)
	}

	// Passing nil data keeps OnNEP17Payment out of the order path.
	common.TransferTokens(settlementToken(ctx), buyer,
		runtime.GetExecutingScriptHash(), cost, nil)

	return newOrder(ctx, buyer, items, cost)
}

// OnNEP17Payment is called by the settlement token when tokens land on the
// contract account. A transfer carrying order items as the data argument
// creates an order for the sender, paid with the transferred amount. A
// transfer with nil data is accepted silently as a plain deposit. Transfers
// of any other token are rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	if !common.BytesEqual(runtime.GetCallingScriptHash(), settlementToken(ctx)) {
		panic(cst.ErrMissingDenom)
	}

	if data == nil {
		return
	}

	items := data.([]OrderItem)

	cost := evalCost(ctx, items)
	if amount != cost {
		panic(cst.ErrNoFunds)
	}

	newOrder(ctx, from, items, cost)
}

// CancelOrder removes the identified order and refunds its full cost to the
// buyer. Only the buyer may cancel and only while the order has not moved
// past the Received status.
func CancelOrder(id int) {
	ctx := storage.GetContext()

	order := getOrder(ctx, id)
	if !runtime.CheckWitness(order.Buyer) {
		panic(cst.ErrUnauthorized)
	}
	if order.Status != orderstatus.Received {
		panic(cst.ErrUnauthorized)
	}

	cost := evalCost(ctx, order.Items)
	storage.Delete(ctx, orderKey(id))

	common.TransferTokens(settlementToken(ctx), runtime.GetExecutingScriptHash(),
		order.Buyer, cost, common.RefundTransferDetails(id))

	runtime.Notify("OrderCancelled", id, order.Buyer)
}

// UpdateOrder moves the identified order to the given fulfilment status and
// replaces its tracking information. It can be invoked by an admin only. The
// status ordinal must not decrease.
func UpdateOrder(id int, status orderstatus.Type, tracking TrackingInfo) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	if status != orderstatus.Received &&
		status != orderstatus.Fulfilling &&
		status != orderstatus.Shipped {
		panic("unsupported status")
	}

	order := getOrder(ctx, id)
	if status < order.Status {
		panic(cst.ErrStatusRegress)
	}

	order.Status = status
	order.Tracking = tracking
	common.SetSerialized(ctx, orderKey(id), order)

	runtime.Notify("OrderUpdated", id, status)
}

// CompleteOrder removes the identified shipped order, releasing its escrowed
// cost into the withdrawable surplus, and registers pending reviews in the
// paired trust contract: one per admin reviewed by the buyer and one for the
// buyer reviewed by the first admin. It can be invoked by an admin only.
//
// All trust contract calls commit atomically with the completing
// transaction.
func CompleteOrder(id int) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	order := getOrder(ctx, id)
	if order.Status != orderstatus.Shipped {
		panic(cst.ErrUnauthorized)
	}

	storage.Delete(ctx, orderKey(id))

	trust := storage.Get(ctx, trustContractKey).(interop.Hash160)
	admins := getAdmins(ctx)

	for i := 0; i < len(admins); i++ {
		contract.Call(trust, "registerPendingReview", contract.All,
			admins[i], order.Buyer, id)
	}
	contract.Call(trust, "registerPendingReview", contract.All,
		order.Buyer, admins[0], id)

	runtime.Notify("OrderCompleted", id, order.Buyer)
}

// RefundOrder removes the identified order regardless of its status and
// refunds its full cost to the buyer. It can be invoked by an admin only and
// covers disputes and defective goods.
func RefundOrder(id int) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	order := getOrder(ctx, id)

	cost := evalCost(ctx, order.Items)
	storage.Delete(ctx, orderKey(id))

	common.TransferTokens(settlementToken(ctx), runtime.GetExecutingScriptHash(),
		order.Buyer, cost, common.RefundTransferDetails(id))

	runtime.Notify("OrderRefunded", id, order.Buyer)
}

// UpdateAdmins replaces the admin set wholesale. It can be invoked by a
// current admin only. The new set must not be empty, completed orders need at
// least one admin to direct the buyer's counter-review to.
func UpdateAdmins(admins []interop.Hash160) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	if len(admins) == 0 {
		panic("empty admin set")
	}
	for i := 0; i < len(admins); i++ {
		if len(admins[i]) != interop.Hash160Len {
			panic("incorrect length of admin script hash")
		}
	}

	common.SetSerialized(ctx, adminListKey, admins)

	runtime.Log("admin set replaced")
}

// UpdateConfig replaces the settlement token, withdrawal destination and
// paired trust contract addresses. It can be invoked by an admin only.
func UpdateConfig(token, withdraw, trust interop.Hash160) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	if len(token) != interop.Hash160Len ||
		len(withdraw) != interop.Hash160Len ||
		len(trust) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, settlementTokenKey, token)
	storage.Put(ctx, withdrawAddressKey, withdraw)
	storage.Put(ctx, trustContractKey, trust)

	runtime.Log("configuration has been updated")
}

// UpdateMarketing replaces storefront presentation data. It can be invoked by
// an admin only.
func UpdateMarketing(marketing Marketing) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	common.SetSerialized(ctx, marketingKey, marketing)

	runtime.Log("marketing info has been updated")
}

// Withdraw transfers the given amount of the settlement token surplus to the
// configured withdrawal address. Zero amount sweeps the whole surplus. It can
// be invoked by an admin only. Funds locked as escrow of live orders are
// never touched.
func Withdraw(amount int) {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	available := withdrawableBalance(ctx)
	if amount == 0 {
		amount = available
	}
	if amount > available {
		panic(cst.ErrNoFunds)
	}

	to := storage.Get(ctx, withdrawAddressKey).(interop.Hash160)
	common.TransferTokens(settlementToken(ctx), runtime.GetExecutingScriptHash(),
		to, amount, common.WithdrawTransferDetails())

	runtime.Notify("Withdraw", to, amount)
}

// GetConfig returns the current contract configuration.
func GetConfig() Config {
	ctx := storage.GetReadOnlyContext()
	return Config{
		SettlementToken: settlementToken(ctx),
		WithdrawAddress: storage.Get(ctx, withdrawAddressKey).(interop.Hash160),
		TrustContract:   storage.Get(ctx, trustContractKey).(interop.Hash160),
	}
}

// MarketingInfo returns storefront presentation data. An empty structure is
// returned until the first UpdateMarketing call.
func MarketingInfo() Marketing {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, marketingKey)
	if data == nil {
		return Marketing{
			FeaturedListings: []Listing{},
			Socials:          []Social{},
		}
	}
	return std.Deserialize(data.([]byte)).(Marketing)
}

// AdminList returns the current admin set.
func AdminList() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getAdmins(ctx)
}

// IsAdmin returns true if the given account is a member of the admin set.
func IsAdmin(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	admins := getAdmins(ctx)
	for i := 0; i < len(admins); i++ {
		if common.BytesEqual(admins[i], account) {
			return true
		}
	}
	return false
}

// Listings returns all catalog entries.
func Listings() []Listing {
	ctx := storage.GetReadOnlyContext()

	result := []Listing{}
	it := storage.Find(ctx, []byte{listingKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(Listing))
	}

	return result
}

// GetListing returns the identified listing. It panics if the listing is
// missing.
func GetListing(id int) Listing {
	ctx := storage.GetReadOnlyContext()
	return getListing(ctx, id)
}

// Orders returns all live orders.
func Orders() []Order {
	ctx := storage.GetReadOnlyContext()
	return getOrders(ctx)
}

// GetOrder returns the identified order. It panics if the order is missing.
func GetOrder(id int) Order {
	ctx := storage.GetReadOnlyContext()
	return getOrder(ctx, id)
}

// OrderCost returns the evaluated cost of the identified live order at
// current catalog prices.
func OrderCost(id int) int {
	ctx := storage.GetReadOnlyContext()
	order := getOrder(ctx, id)
	return evalCost(ctx, order.Items)
}

// LockedBalance returns the amount of the settlement token locked as escrow
// of live orders.
func LockedBalance() int {
	ctx := storage.GetReadOnlyContext()
	return lockedBalance(ctx)
}

// WithdrawableBalance returns the settlement token surplus the admin can
// sweep: the held balance minus the locked balance.
func WithdrawableBalance() int {
	ctx := storage.GetReadOnlyContext()
	return withdrawableBalance(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// evalCost computes the total cost of the given items at current catalog
// prices. Every referenced listing and listing option must exist. Arithmetic
// runs on VM integers, an out-of-range result faults the whole call.
func evalCost(ctx storage.Context, items []OrderItem) int {
	total := 0

	for i := 0; i < len(items); i++ {
		item := items[i]

		data := storage.Get(ctx, listingKey(item.ListingID))
		if data == nil {
			panic(cst.ErrInvalidOrder)
		}
		listing := std.Deserialize(data.([]byte)).(Listing)

		itemCost := listing.Price.Amount
		for j := 0; j < len(item.Options); j++ {
			opt := item.Options[j]
			if !hasOption(listing, opt.OptionID) {
				panic(cst.ErrInvalidOrder)
			}
			if len(opt.SelectedItem.Cost.Token) != 0 {
				itemCost += opt.SelectedItem.Cost.Amount
			}
		}

		total += itemCost * item.Amount
	}

	return total
}

func hasOption(listing Listing, optionID int) bool {
	for i := 0; i < len(listing.Options); i++ {
		if listing.Options[i].ID == optionID {
			return true
		}
	}
	return false
}

func newOrder(ctx storage.Context, buyer interop.Hash160, items []OrderItem, cost int) int {
	order := Order{
		ID:       common.NextID(ctx, orderCounterKey),
		Buyer:    buyer,
		Items:    items,
		Status:   orderstatus.Received,
		Tracking: TrackingInfo{},
	}

	common.SetSerialized(ctx, orderKey(order.ID), order)

	runtime.Notify("OrderCreated", order.ID, buyer, cost)
	return order.ID
}

// validateListing checks listing data before it is stored: at least one image
// and settlement token denomination of every priced option item.
func validateListing(token interop.Hash160, attributes Attributes, options []ListingOption) {
	if len(attributes.Images) == 0 {
		panic(cst.ErrNotEnoughImages)
	}

	for i := 0; i < len(options); i++ {
		items := options[i].Items
		for j := 0; j < len(items); j++ {
			c := items[j].Cost
			if len(c.Token) != 0 && !common.BytesEqual(c.Token, token) {
				panic(cst.ErrMissingDenom)
			}
		}
	}
}

// requireNoActiveOrders panics if the identified listing is missing or any
// live order references it.
func requireNoActiveOrders(ctx storage.Context, listingID int) {
	if storage.Get(ctx, listingKey(listingID)) == nil {
		panic(cst.ErrListingNotFound)
	}

	orders := getOrders(ctx)
	for i := 0; i < len(orders); i++ {
		items := orders[i].Items
		for j := 0; j < len(items); j++ {
			if items[j].ListingID == listingID {
				panic(cst.ErrActiveOrder)
			}
		}
	}
}

func lockedBalance(ctx storage.Context) int {
	total := 0

	orders := getOrders(ctx)
	for i := 0; i < len(orders); i++ {
		total += evalCost(ctx, orders[i].Items)
	}

	return total
}

func withdrawableBalance(ctx storage.Context) int {
	held := contract.Call(settlementToken(ctx), "balanceOf", contract.ReadOnly,
		runtime.GetExecutingScriptHash()).(int)
	return held - lockedBalance(ctx)
}

func getAdmins(ctx storage.Context) []interop.Hash160 {
	data := storage.Get(ctx, adminListKey)
	return std.Deserialize(data.([]byte)).([]interop.Hash160)
}

// checkAdminWitness panics unless the calling transaction is witnessed by a
// member of the admin set.
func checkAdminWitness(ctx storage.Context) {
	admins := getAdmins(ctx)
	for i := 0; i < len(admins); i++ {
		if runtime.CheckWitness(admins[i]) {
			return
		}
	}
	panic(cst.ErrUnauthorized)
}

func settlementToken(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, settlementTokenKey).(interop.Hash160)
}

func getListing(ctx storage.Context, id int) Listing {
	data := storage.Get(ctx, listingKey(id))
	if data == nil {
		panic(cst.ErrListingNotFound)
	}
	return std.Deserialize(data.([]byte)).(Listing)
}

func getOrder(ctx storage.Context, id int) Order {
	data := storage.Get(ctx, orderKey(id))
	if data == nil {
		panic(cst.ErrOrderNotFound)
	}
	return std.Deserialize(data.([]byte)).(Order)
}

func getOrders(ctx storage.Context) []Order {
	result := []Order{}

	it := storage.Find(ctx, []byte{orderKeyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		result = append(result, iterator.Value(it).(Order))
	}

	return result
}

func listingKey(id int) []byte {
	return append([]byte{listingKeyPrefix}, convert.ToBytes(id)...)
}

func orderKey(id int) []byte {
	return append([]byte{orderKeyPrefix}, convert.ToBytes(id)...)
}
