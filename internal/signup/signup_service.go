// Package signup manages confirmed and waitlisted signups for
// fixed-capacity items, including FIFO waitlist promotion.
package signup

import (
	"context"
	"errors"
	"fmt"

	"charity-auction/internal/auctionerrors"
	"charity-auction/internal/itemlock"
	"charity-auction/internal/models"
	"charity-auction/internal/store"
)

// maxAttempts bounds retries of an operation when the store reports a
// transient conflict.
const maxAttempts = 3

// SignupResult reports whether a signup was admitted or waitlisted.
type SignupResult struct {
	Confirmed  bool `json:"confirmed"`
	Waitlisted bool `json:"waitlisted"`
	Quantity   int  `json:"quantity"`
	SpotsLeft  int  `json:"spots_left"`
}

// AdjustResult is the structured outcome of a quantity adjustment.
// Capacity shortfalls are reported here, not as errors: Applied is false
// and Reason carries the remaining-seats message.
type AdjustResult struct {
	Applied    bool   `json:"applied"`
	Reason     string `json:"reason,omitempty"`
	Waitlisted bool   `json:"waitlisted"`
	Quantity   int    `json:"quantity"`
	Promoted   int    `json:"promoted"`
	SpotsLeft  int    `json:"spots_left"`
}

// CancelResult reports whether a signup existed and was removed.
type CancelResult struct {
	Applied  bool `json:"applied"`
	Promoted int  `json:"promoted"`
}

// SignupService admits, adjusts and cancels signups for fixed-price items
type SignupService struct {
	store store.AuctionStore
	locks *itemlock.Registry
}

// NewSignupService creates a new SignupService instance
func NewSignupService(st store.AuctionStore, locks *itemlock.Registry) *SignupService {
	return &SignupService{store: st, locks: locks}
}

// Signup admits the user when enough capacity remains, otherwise
// waitlists the full requested quantity. A repeated signup by the same
// user is an idempotent success reporting the current state.
func (s *SignupService) Signup(ctx context.Context, itemID, userID string, quantity int) (SignupResult, error) {
	if itemID == "" || userID == "" {
		return SignupResult{}, fmt.Errorf("service: %w - missing itemID or userID", auctionerrors.ErrInvalidInput)
	}
	if quantity < 1 {
		return SignupResult{}, fmt.Errorf("service: %w - quantity must be at least 1", auctionerrors.ErrInvalidInput)
	}

	var (
		result SignupResult
		err    error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err = s.signupOnce(ctx, itemID, userID, quantity)
		if !errors.Is(err, auctionerrors.ErrConflict) {
			break
		}
	}
	return result, err
}

func (s *SignupService) signupOnce(ctx context.Context, itemID, userID string, quantity int) (SignupResult, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.loadFixedPriceItem(ctx, itemID)
	if err != nil {
		return SignupResult{}, err
	}
	if item.Status != models.StatusPublished {
		return SignupResult{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrSignupNotAllowed, itemID)
	}

	existing, err := s.store.GetSignup(ctx, itemID, userID)
	if err == nil {
		// Already signed up: report the current state unchanged.
		signups, err := s.store.ListSignups(ctx, itemID)
		if err != nil {
			return SignupResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
		}
		return SignupResult{
			Confirmed:  !existing.Waitlisted,
			Waitlisted: existing.Waitlisted,
			Quantity:   existing.Quantity,
			SpotsLeft:  spotsLeft(item, confirmedTotal(signups)),
		}, nil
	}
	if !errors.Is(err, auctionerrors.ErrNoSignup) {
		return SignupResult{}, fmt.Errorf("service: failed to check signup for item %s: %w", itemID, err)
	}

	signups, err := s.store.ListSignups(ctx, itemID)
	if err != nil {
		return SignupResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
	}
	confirmed := confirmedTotal(signups)
	remaining := spotsLeft(item, confirmed)

	if remaining >= quantity {
		if err := s.store.CreateSignup(ctx, models.Signup{ItemID: itemID, UserID: userID, Quantity: quantity}); err != nil {
			return SignupResult{}, fmt.Errorf("service: failed to create signup for item %s: %w", itemID, err)
		}
		confirmed += quantity
		if err := s.store.UpdateItemQuantitySold(ctx, itemID, confirmed); err != nil {
			return SignupResult{}, fmt.Errorf("service: failed to update quantity sold for item %s: %w", itemID, err)
		}
		return SignupResult{Confirmed: true, Quantity: quantity, SpotsLeft: spotsLeft(item, confirmed)}, nil
	}

	// Not enough space: the entire request goes on the waitlist.
	if err := s.store.CreateSignup(ctx, models.Signup{ItemID: itemID, UserID: userID, Quantity: quantity, Waitlisted: true}); err != nil {
		return SignupResult{}, fmt.Errorf("service: failed to create waitlisted signup for item %s: %w", itemID, err)
	}
	return SignupResult{Waitlisted: true, Quantity: quantity, SpotsLeft: remaining}, nil
}

// Adjust changes the user's requested quantity. Waitlisted signups are
// updated in place; confirmed increases require free capacity; confirmed
// decreases free capacity and trigger waitlist promotion.
func (s *SignupService) Adjust(ctx context.Context, itemID, userID string, newQuantity int) (AdjustResult, error) {
	if itemID == "" || userID == "" {
		return AdjustResult{}, fmt.Errorf("service: %w - missing itemID or userID", auctionerrors.ErrInvalidInput)
	}
	if newQuantity < 1 {
		return AdjustResult{}, fmt.Errorf("service: %w - quantity must be at least 1", auctionerrors.ErrInvalidInput)
	}

	var (
		result AdjustResult
		err    error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err = s.adjustOnce(ctx, itemID, userID, newQuantity)
		if !errors.Is(err, auctionerrors.ErrConflict) {
			break
		}
	}
	return result, err
}

func (s *SignupService) adjustOnce(ctx context.Context, itemID, userID string, newQuantity int) (AdjustResult, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.loadFixedPriceItem(ctx, itemID)
	if err != nil {
		return AdjustResult{}, err
	}

	signup, err := s.store.GetSignup(ctx, itemID, userID)
	if err != nil {
		return AdjustResult{}, fmt.Errorf("service: failed to load signup for item %s: %w", itemID, err)
	}

	if signup.Waitlisted {
		// Quantity changes on the waitlist never touch capacity;
		// promotion happens only on capacity-freeing events.
		signup.Quantity = newQuantity
		if err := s.store.UpdateSignup(ctx, signup); err != nil {
			return AdjustResult{}, fmt.Errorf("service: failed to update waitlisted signup for item %s: %w", itemID, err)
		}
		signups, err := s.store.ListSignups(ctx, itemID)
		if err != nil {
			return AdjustResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
		}
		return AdjustResult{
			Applied:    true,
			Waitlisted: true,
			Quantity:   newQuantity,
			SpotsLeft:  spotsLeft(item, confirmedTotal(signups)),
		}, nil
	}

	oldQuantity := signup.Quantity
	signups, err := s.store.ListSignups(ctx, itemID)
	if err != nil {
		return AdjustResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
	}
	confirmed := confirmedTotal(signups)

	if newQuantity == oldQuantity {
		return AdjustResult{Applied: true, Quantity: newQuantity, SpotsLeft: spotsLeft(item, confirmed)}, nil
	}

	if newQuantity > oldQuantity {
		delta := newQuantity - oldQuantity
		remaining := spotsLeft(item, confirmed)
		if remaining < delta {
			return AdjustResult{
				Applied:   false,
				Reason:    fmt.Sprintf("only %d more seat(s) available", remaining),
				Quantity:  oldQuantity,
				SpotsLeft: remaining,
			}, nil
		}
		signup.Quantity = newQuantity
		if err := s.store.UpdateSignup(ctx, signup); err != nil {
			return AdjustResult{}, fmt.Errorf("service: failed to update signup for item %s: %w", itemID, err)
		}
		confirmed += delta
		if err := s.store.UpdateItemQuantitySold(ctx, itemID, confirmed); err != nil {
			return AdjustResult{}, fmt.Errorf("service: failed to update quantity sold for item %s: %w", itemID, err)
		}
		return AdjustResult{Applied: true, Quantity: newQuantity, SpotsLeft: spotsLeft(item, confirmed)}, nil
	}

	// Decrease frees capacity; apply it, then promote from the waitlist.
	signup.Quantity = newQuantity
	if err := s.store.UpdateSignup(ctx, signup); err != nil {
		return AdjustResult{}, fmt.Errorf("service: failed to update signup for item %s: %w", itemID, err)
	}
	signups, err = s.store.ListSignups(ctx, itemID)
	if err != nil {
		return AdjustResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
	}
	confirmed, promoted, err := s.promoteWaitlist(ctx, item, signups)
	if err != nil {
		return AdjustResult{}, err
	}
	if err := s.store.UpdateItemQuantitySold(ctx, itemID, confirmed); err != nil {
		return AdjustResult{}, fmt.Errorf("service: failed to update quantity sold for item %s: %w", itemID, err)
	}
	return AdjustResult{Applied: true, Quantity: newQuantity, Promoted: promoted, SpotsLeft: spotsLeft(item, confirmed)}, nil
}

// Cancel removes the user's signup. Canceling a confirmed signup frees
// capacity and triggers waitlist promotion; canceling a missing signup
// is reported as not applied.
func (s *SignupService) Cancel(ctx context.Context, itemID, userID string) (CancelResult, error) {
	if itemID == "" || userID == "" {
		return CancelResult{}, fmt.Errorf("service: %w - missing itemID or userID", auctionerrors.ErrInvalidInput)
	}

	var (
		result CancelResult
		err    error
	)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err = s.cancelOnce(ctx, itemID, userID)
		if !errors.Is(err, auctionerrors.ErrConflict) {
			break
		}
	}
	return result, err
}

func (s *SignupService) cancelOnce(ctx context.Context, itemID, userID string) (CancelResult, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.loadFixedPriceItem(ctx, itemID)
	if err != nil {
		return CancelResult{}, err
	}

	signup, err := s.store.GetSignup(ctx, itemID, userID)
	if errors.Is(err, auctionerrors.ErrNoSignup) {
		return CancelResult{}, nil
	}
	if err != nil {
		return CancelResult{}, fmt.Errorf("service: failed to load signup for item %s: %w", itemID, err)
	}

	if err := s.store.DeleteSignup(ctx, itemID, userID); err != nil {
		return CancelResult{}, fmt.Errorf("service: failed to delete signup for item %s: %w", itemID, err)
	}

	if signup.Waitlisted {
		return CancelResult{Applied: true}, nil
	}

	signups, err := s.store.ListSignups(ctx, itemID)
	if err != nil {
		return CancelResult{}, fmt.Errorf("service: failed to list signups for item %s: %w", itemID, err)
	}
	confirmed, promoted, err := s.promoteWaitlist(ctx, item, signups)
	if err != nil {
		return CancelResult{}, err
	}
	if err := s.store.UpdateItemQuantitySold(ctx, itemID, confirmed); err != nil {
		return CancelResult{}, fmt.Errorf("service: failed to update quantity sold for item %s: %w", itemID, err)
	}
	return CancelResult{Applied: true, Promoted: promoted}, nil
}

// promoteWaitlist walks the waitlist in creation order, promoting each
// signup whose full quantity fits the remaining capacity. Requests that
// do not fit are skipped, never split. Returns the resulting confirmed
// total and the number of signups promoted.
func (s *SignupService) promoteWaitlist(ctx context.Context, item models.Item, signups []models.Signup) (int, int, error) {
	confirmed := confirmedTotal(signups)
	remaining := spotsLeft(item, confirmed)
	promoted := 0
	for _, su := range signups {
		if remaining <= 0 {
			break
		}
		if !su.Waitlisted || su.Quantity > remaining {
			continue
		}
		su.Waitlisted = false
		if err := s.store.UpdateSignup(ctx, su); err != nil {
			return 0, 0, fmt.Errorf("service: failed to promote signup for user %s on item %s: %w", su.UserID, su.ItemID, err)
		}
		confirmed += su.Quantity
		remaining -= su.Quantity
		promoted++
	}
	return confirmed, promoted, nil
}

func (s *SignupService) loadFixedPriceItem(ctx context.Context, itemID string) (models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if !item.FixedPrice() {
		return models.Item{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrSignupNotAllowed, itemID)
	}
	return item, nil
}

// confirmedTotal sums the quantities of non-waitlisted signups. It is
// the authoritative source for the item's quantity_sold value.
func confirmedTotal(signups []models.Signup) int {
	total := 0
	for _, su := range signups {
		if !su.Waitlisted {
			total += su.Quantity
		}
	}
	return total
}

func spotsLeft(item models.Item, confirmed int) int {
	remaining := item.Capacity() - confirmed
	if remaining < 0 {
		return 0
	}
	return remaining
}
