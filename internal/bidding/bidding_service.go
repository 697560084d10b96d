// Package bidding applies proxy-bid submissions against the auction
// engine under a per-item critical section.
package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-auction/internal/auctionerrors"
	"charity-auction/internal/engine"
	"charity-auction/internal/itemlock"
	"charity-auction/internal/models"
	"charity-auction/internal/store"
	"charity-auction/utils"

	"github.com/shopspring/decimal"
)

// maxAttempts bounds retries of the read-compute-write cycle when the
// store reports a transient conflict.
const maxAttempts = 3

// BidResult is the structured outcome of a bid submission. Business-rule
// rejections are reported here, not as errors: Accepted is false and
// Message carries the computed minimum.
type BidResult struct {
	Accepted    bool            `json:"accepted"`
	Message     string          `json:"message"`
	SeatsBefore int             `json:"seats_before"`
	SeatsAfter  int             `json:"seats_after"`
	LeaderID    string          `json:"leader_id"`
	Price       decimal.Decimal `json:"price"`
	Exhausted   bool            `json:"exhausted"`
}

// BiddingService coordinates proxy-bid intake for auction items
type BiddingService struct {
	store store.AuctionStore
	locks *itemlock.Registry
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(st store.AuctionStore, locks *itemlock.Registry) *BiddingService {
	return &BiddingService{store: st, locks: locks}
}

// PlaceOrRaiseBid validates and applies a new or raised proxy bid. The
// bidder's standing maximum never decreases; seats are clamped to the
// item's capacity. An audit bid row is appended only when the public
// leader or clearing price changes.
func (s *BiddingService) PlaceOrRaiseBid(ctx context.Context, itemID, bidderID string, amount decimal.Decimal, seats int) (BidResult, error) {
	if itemID == "" || bidderID == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing itemID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return BidResult{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	var (
		result BidResult
		err    error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err = s.placeOnce(ctx, itemID, bidderID, amount, seats)
		if !errors.Is(err, auctionerrors.ErrConflict) {
			break
		}
	}
	return result, err
}

// placeOnce runs one read-compute-write cycle under the item lock.
func (s *BiddingService) placeOnce(ctx context.Context, itemID, bidderID string, amount decimal.Decimal, seats int) (BidResult, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.Status != models.StatusPublished || !item.Biddable() {
		return BidResult{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrNotBiddable, itemID)
	}

	k := item.Capacity()
	if seats < 1 {
		seats = 1
	}
	if seats > k {
		seats = k
	}

	bids, err := s.store.ListProxyBids(ctx, itemID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to list proxy bids for item %s: %w", itemID, err)
	}
	prev := engine.Compute(item, bids)

	var existing *models.ProxyBid
	for i := range bids {
		if bids[i].BidderID == bidderID {
			existing = &bids[i]
		}
	}

	// A later submission may only raise the standing maximum.
	newMax := amount
	if existing != nil && existing.MaxAmount.GreaterThanOrEqual(newMax) {
		newMax = existing.MaxAmount
	}

	if existing != nil && newMax.Equal(existing.MaxAmount) && seats == existing.Seats {
		// Identical standing bid: leave the record (and its tie-break
		// timestamp) untouched.
		held := prev.SeatsFor(bidderID)
		return BidResult{
			Accepted:    true,
			Message:     seatFeedback(held, held),
			SeatsBefore: held,
			SeatsAfter:  held,
			LeaderID:    prev.LeaderID,
			Price:       prev.Price,
			Exhausted:   prev.Exhausted,
		}, nil
	}

	candidate := models.ProxyBid{
		ItemID:    itemID,
		BidderID:  bidderID,
		MaxAmount: newMax,
		Seats:     seats,
		UpdatedAt: time.Now().UTC(),
	}
	if existing != nil && newMax.Equal(existing.MaxAmount) {
		// Seat-count-only change keeps the original priority at this amount.
		candidate.UpdatedAt = existing.UpdatedAt
	}
	next := engine.Compute(item, replaceBid(bids, candidate))

	// Validate before committing: a rejected submission must not raise
	// the stored maximum.
	if reason, ok := s.validate(item, prev, next, bidderID, newMax); !ok {
		return BidResult{
			Accepted:    false,
			Message:     reason,
			SeatsBefore: prev.SeatsFor(bidderID),
			SeatsAfter:  prev.SeatsFor(bidderID),
			LeaderID:    prev.LeaderID,
			Price:       prev.Price,
			Exhausted:   prev.Exhausted,
		}, nil
	}

	if err := s.store.UpsertProxyBid(ctx, candidate); err != nil {
		return BidResult{}, fmt.Errorf("service: failed to upsert proxy bid for item %s by bidder %s: %w", itemID, bidderID, err)
	}

	if !next.SamePublicState(prev) {
		audit := models.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  next.LeaderID,
			Amount:    next.Price,
			CreatedAt: candidate.UpdatedAt,
		}
		if err := s.store.AppendBid(ctx, audit); err != nil {
			return BidResult{}, fmt.Errorf("service: failed to append audit bid for item %s: %w", itemID, err)
		}
	}

	return BidResult{
		Accepted:    true,
		Message:     seatFeedback(prev.SeatsFor(bidderID), next.SeatsFor(bidderID)),
		SeatsBefore: prev.SeatsFor(bidderID),
		SeatsAfter:  next.SeatsFor(bidderID),
		LeaderID:    next.LeaderID,
		Price:       next.Price,
		Exhausted:   next.Exhausted,
	}, nil
}

// validate applies the intake business rules against the before/after
// outcomes. It returns the rejection reason when the submission is too
// low to stand.
func (s *BiddingService) validate(item models.Item, prev, next engine.Outcome, bidderID string, newMax decimal.Decimal) (string, bool) {
	if !prev.Exhausted {
		if newMax.LessThan(item.OpeningMin()) {
			return fmt.Sprintf("bid must be at least the opening minimum of %s", item.OpeningMin()), false
		}
		return "", true
	}
	if next.SeatsFor(bidderID) > 0 {
		return "", true
	}
	minRequired := engine.MinimumRaise(item, prev.Price)
	if newMax.LessThan(minRequired) {
		return fmt.Sprintf("bid must be at least %s", minRequired), false
	}
	return "", true
}

// CurrentState returns the derived public outcome for display. It reads
// outside the critical section, so concurrent writers may not yet be
// visible.
func (s *BiddingService) CurrentState(ctx context.Context, itemID string) (engine.Outcome, error) {
	if itemID == "" {
		return engine.Outcome{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return engine.Outcome{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if !item.Biddable() {
		return engine.Outcome{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrNotBiddable, itemID)
	}
	bids, err := s.store.ListProxyBids(ctx, itemID)
	if err != nil {
		return engine.Outcome{}, fmt.Errorf("service: failed to list proxy bids for item %s: %w", itemID, err)
	}
	return engine.Compute(item, bids), nil
}

// ListBids returns the item's audit bids, top bid first.
func (s *BiddingService) ListBids(ctx context.Context, itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.store.ListBids(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// replaceBid returns the bid set with the (item, bidder) entry replaced
// or appended. The input slice is not modified.
func replaceBid(bids []models.ProxyBid, candidate models.ProxyBid) []models.ProxyBid {
	out := make([]models.ProxyBid, 0, len(bids)+1)
	replaced := false
	for _, b := range bids {
		if b.BidderID == candidate.BidderID {
			out = append(out, candidate)
			replaced = true
			continue
		}
		out = append(out, b)
	}
	if !replaced {
		out = append(out, candidate)
	}
	return out
}

// seatFeedback phrases the caller's before/after seat count.
func seatFeedback(before, after int) string {
	switch {
	case after > 0 && before == 0:
		return fmt.Sprintf("now winning %d seat(s)", after)
	case after > 0:
		return fmt.Sprintf("still winning %d seat(s)", after)
	default:
		return "not winning a seat yet"
	}
}
