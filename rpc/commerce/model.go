package commerce

import (
	"github.com/nspcc-dev/neo-go/pkg/util"
)

type (
	// Coin is an amount of a concrete NEP-17 token.
	Coin struct {
		Token  util.Uint160
		Amount int64
	}

	// Attributes is the human-readable part of a listing.
	Attributes struct {
		Name        string
		Description string
		Images      []string
	}

	// ListingOptionItem is one selectable value of a listing option.
	ListingOptionItem struct {
		Name string
		Cost Coin
	}

	// ListingOption is a group of selectable values of a listing.
	ListingOption struct {
		ID          int64
		Name        string
		Description string
		Items       []ListingOptionItem
	}

	// Listing is a sellable catalog entry.
	Listing struct {
		ID         int64
		Active     bool
		Price      Coin
		Attributes Attributes
		Options    []ListingOption
	}

	// OrderOption is a selection of one listing option value.
	OrderOption struct {
		OptionID     int64
		SelectedItem ListingOptionItem
	}

	// OrderItem is a single position of an order.
	OrderItem struct {
		ListingID int64
		Options   []OrderOption
		Amount    int64
	}

	// TrackingInfo is shipment tracking data of an order.
	TrackingInfo struct {
		Provider string
		URL      string
	}

	// Order is a buyer's escrowed purchase.
	Order struct {
		ID       int64
		Buyer    util.Uint160
		Items    []OrderItem
		Status   int64
		Tracking TrackingInfo
	}

	// Social is a link to a social network account of the store.
	Social struct {
		Network string
		URL     string
	}

	// Marketing is storefront presentation data.
	Marketing struct {
		Name             string
		Copyright        string
		Logo             string
		FeaturedListings []Listing
		Socials          []Social
	}

	// Config groups addresses the contract settles against.
	Config struct {
		SettlementToken util.Uint160
		WithdrawAddress util.Uint160
		TrustContract   util.Uint160
	}
)
