// Package engine computes the public auction state for an item from its
// set of private proxy bids. The computation is pure: callers are
// responsible for loading a consistent snapshot of the bids.
package engine

import (
	"sort"
	"time"

	"charity-auction/internal/increment"
	"charity-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Outcome is the derived public state of an item's auction.
type Outcome struct {
	// LeaderID is the bidder holding the top-sorted seat, empty when
	// there are no proxy bids.
	LeaderID string
	// Price is the public uniform clearing price. It is always at least
	// the item's opening minimum.
	Price decimal.Decimal
	// Exhausted reports whether declared seat demand exceeds capacity.
	Exhausted bool
	// Winners maps each winning bidder to the number of seats they hold.
	Winners map[string]int
}

// SeatsFor returns the number of seats the given bidder currently wins.
func (o Outcome) SeatsFor(bidderID string) int {
	return o.Winners[bidderID]
}

// SamePublicState reports whether two outcomes are indistinguishable to
// the public: same leader and same clearing price.
func (o Outcome) SamePublicState(other Outcome) bool {
	return o.LeaderID == other.LeaderID && o.Price.Equal(other.Price)
}

// Step returns the minimum increment over current for the item, honoring
// a fixed per-item override when one is configured.
func Step(item models.Item, current decimal.Decimal) decimal.Decimal {
	if item.BidIncrement != nil {
		return *item.BidIncrement
	}
	return increment.Standard(current)
}

// MinimumRaise returns the lowest maximum a non-winning bidder must
// declare to contend once capacity is exhausted at the given price.
func MinimumRaise(item models.Item, price decimal.Decimal) decimal.Decimal {
	return price.Add(Step(item, price))
}

// unit is one indivisible seat of demand, carrying its bid's priority keys.
type unit struct {
	max       decimal.Decimal
	updatedAt time.Time
	bidderID  string
}

// Compute derives the current outcome for the item from all of its proxy
// bids. Seats are expanded into unit demand and sorted by descending
// maximum, breaking ties by earliest update so the first submission at a
// given amount keeps priority.
func Compute(item models.Item, bids []models.ProxyBid) Outcome {
	k := item.Capacity()
	opening := item.OpeningMin()

	units := make([]unit, 0, len(bids))
	for _, b := range bids {
		seats := b.Seats
		if seats < 1 {
			seats = 1
		}
		if seats > k {
			seats = k
		}
		for i := 0; i < seats; i++ {
			units = append(units, unit{max: b.MaxAmount, updatedAt: b.UpdatedAt, bidderID: b.BidderID})
		}
	}

	if len(units) == 0 {
		return Outcome{Price: opening, Winners: map[string]int{}}
	}

	sort.Slice(units, func(i, j int) bool {
		if !units[i].max.Equal(units[j].max) {
			return units[i].max.GreaterThan(units[j].max)
		}
		if !units[i].updatedAt.Equal(units[j].updatedAt) {
			return units[i].updatedAt.Before(units[j].updatedAt)
		}
		return units[i].bidderID < units[j].bidderID
	})

	if len(units) <= k {
		// Demand fits: everyone wins a seat at the opening minimum.
		winners := make(map[string]int, len(units))
		for _, u := range units {
			winners[u.bidderID]++
		}
		return Outcome{
			LeaderID: units[0].bidderID,
			Price:    opening,
			Winners:  winners,
		}
	}

	// Uniform clearing price: one step over the runner-up unit, capped by
	// the K-th winner's own maximum and floored by the opening minimum.
	kth := units[k-1].max
	runnerUp := units[k].max
	price := runnerUp.Add(Step(item, runnerUp))
	if kth.LessThan(price) {
		price = kth
	}
	if price.LessThan(opening) {
		price = opening
	}

	winners := make(map[string]int, k)
	for _, u := range units[:k] {
		winners[u.bidderID]++
	}
	return Outcome{
		LeaderID:  units[0].bidderID,
		Price:     price,
		Exhausted: true,
		Winners:   winners,
	}
}
