// Package store persists items, proxy bids, audit bids and signups.
package store

import (
	"context"

	"charity-auction/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// AuctionStore is the persistence surface consumed by the bidding and
// signup services. Implementations must make each individual write
// atomic; multi-write sequences are coordinated by the caller holding
// the per-item lock.
type AuctionStore interface {
	// GetItem returns the item or auctionerrors.ErrItemNotFound.
	GetItem(ctx context.Context, itemID string) (models.Item, error)

	// ListProxyBids returns every proxy bid for the item.
	ListProxyBids(ctx context.Context, itemID string) ([]models.ProxyBid, error)
	// UpsertProxyBid creates or replaces the (item, bidder) proxy bid.
	UpsertProxyBid(ctx context.Context, bid models.ProxyBid) error

	// AppendBid records an audit bid row.
	AppendBid(ctx context.Context, bid models.Bid) error
	// ListBids returns audit bids ordered by amount then recency, both
	// descending, so the first element is the top bid.
	ListBids(ctx context.Context, itemID string) ([]models.Bid, error)

	// ListSignups returns every signup for the item in creation order,
	// which is the waitlist's FIFO order.
	ListSignups(ctx context.Context, itemID string) ([]models.Signup, error)
	// GetSignup returns the (item, user) signup or auctionerrors.ErrNoSignup.
	GetSignup(ctx context.Context, itemID, userID string) (models.Signup, error)
	CreateSignup(ctx context.Context, signup models.Signup) error
	UpdateSignup(ctx context.Context, signup models.Signup) error
	DeleteSignup(ctx context.Context, itemID, userID string) error

	// UpdateItemQuantitySold stores the recomputed confirmed total.
	UpdateItemQuantitySold(ctx context.Context, itemID string, sold int) error
}
