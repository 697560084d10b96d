package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType distinguishes biddable items from fixed-price signup items
type ItemType string

const (
	TypeGood       ItemType = "good"
	TypeService    ItemType = "service"
	TypeEvent      ItemType = "event"
	TypeFixedPrice ItemType = "fixed"
)

// ItemStatus is the publication state of an item
type ItemStatus string

const (
	StatusDraft     ItemStatus = "draft"
	StatusPublished ItemStatus = "published"
	StatusSold      ItemStatus = "sold"
	StatusArchived  ItemStatus = "archived"
)

// Item represents an auction item. QuantityTotal is the number of seats
// (capacity K) for multi-seat items; QuantitySold tracks confirmed signup
// quantities for fixed-price items and is always recomputed from the
// signup set, never incremented independently.
type Item struct {
	ItemID        string           `json:"item_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Type          ItemType         `json:"type"`
	Status        ItemStatus       `json:"status"`
	OpeningMinBid *decimal.Decimal `json:"opening_min_bid,omitempty"`
	BidIncrement  *decimal.Decimal `json:"bid_increment,omitempty"`
	QuantityTotal int              `json:"quantity_total"`
	QuantitySold  int              `json:"quantity_sold"`
}

// Biddable reports whether the item type accepts bids at all.
// Publication status is checked separately.
func (i Item) Biddable() bool {
	return i.Type == TypeGood || i.Type == TypeService || i.Type == TypeEvent
}

// FixedPrice reports whether the item is a fixed-price signup item.
func (i Item) FixedPrice() bool {
	return i.Type == TypeFixedPrice
}

// Capacity returns the number of available seats, defaulting to 1.
func (i Item) Capacity() int {
	if i.QuantityTotal < 1 {
		return 1
	}
	return i.QuantityTotal
}

// OpeningMin returns the opening minimum bid, defaulting to 1.00 when
// no explicit floor is set.
func (i Item) OpeningMin() decimal.Decimal {
	if i.OpeningMinBid == nil {
		return decimal.NewFromInt(1)
	}
	return *i.OpeningMinBid
}

// ProxyBid is a bidder's private standing maximum on an item. One record
// per (item, bidder) pair; MaxAmount only ever increases across updates.
type ProxyBid struct {
	ItemID    string          `json:"item_id"`
	BidderID  string          `json:"bidder_id"`
	MaxAmount decimal.Decimal `json:"max_amount"`
	Seats     int             `json:"seats"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Bid is an append-only audit record of a public outcome change. It is
// written only when the clearing price or leader moves, not on every
// proxy update.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ItemID    string          `json:"item_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Signup is a fixed-price reservation. Confirmed signups (Waitlisted ==
// false) consume capacity; waitlisted ones queue in CreatedAt order.
type Signup struct {
	ItemID     string    `json:"item_id"`
	UserID     string    `json:"user_id"`
	Quantity   int       `json:"quantity"`
	Waitlisted bool      `json:"waitlisted"`
	CreatedAt  time.Time `json:"created_at"`
}
