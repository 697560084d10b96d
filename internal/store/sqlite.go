package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"charity-auction/internal/auctionerrors"
	"charity-auction/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// schema is the full database schema. Monetary amounts are stored as
// TEXT and parsed into decimals to avoid float drift.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    item_id         TEXT PRIMARY KEY,
    title           TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    type            TEXT NOT NULL CHECK (type IN ('good', 'service', 'event', 'fixed')),
    status          TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'sold', 'archived')),
    opening_min_bid TEXT,
    bid_increment   TEXT,
    quantity_total  INTEGER NOT NULL DEFAULT 1 CHECK (quantity_total >= 1),
    quantity_sold   INTEGER NOT NULL DEFAULT 0 CHECK (quantity_sold >= 0)
);

CREATE TABLE IF NOT EXISTS proxy_bids (
    item_id    TEXT NOT NULL REFERENCES items(item_id),
    bidder_id  TEXT NOT NULL,
    max_amount TEXT NOT NULL,
    seats      INTEGER NOT NULL CHECK (seats >= 1),
    updated_at DATETIME NOT NULL,
    PRIMARY KEY (item_id, bidder_id)
);

CREATE TABLE IF NOT EXISTS bids (
    bid_id     TEXT PRIMARY KEY,
    item_id    TEXT NOT NULL REFERENCES items(item_id),
    bidder_id  TEXT NOT NULL,
    amount     TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_item ON bids(item_id);

CREATE TABLE IF NOT EXISTS signups (
    item_id    TEXT NOT NULL REFERENCES items(item_id),
    user_id    TEXT NOT NULL,
    quantity   INTEGER NOT NULL CHECK (quantity >= 1),
    waitlisted INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    PRIMARY KEY (item_id, user_id)
);
`

// SQLiteStore is an AuctionStore backed by an embedded SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ AuctionStore = (*SQLiteStore)(nil)

// Open opens (or creates) the SQLite database at path, applies pragmas
// and ensures the schema exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == ":memory:" {
		// Every pooled connection would otherwise get its own private
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// wrap converts driver-level errors into the store's error taxonomy.
// Lock contention surfaces as ErrConflict so callers can retry.
func wrap(op string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func nullAmount(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateItem inserts an item. Used by server bootstrap seeding and tests;
// item catalog management is otherwise outside this store's concern.
func (s *SQLiteStore) CreateItem(ctx context.Context, item models.Item) error {
	var opening, incr interface{}
	if item.OpeningMinBid != nil {
		opening = item.OpeningMinBid.String()
	}
	if item.BidIncrement != nil {
		incr = item.BidIncrement.String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO items
		 (item_id, title, description, type, status, opening_min_bid, bid_increment, quantity_total, quantity_sold)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.Title, item.Description, string(item.Type), string(item.Status),
		opening, incr, item.Capacity(), item.QuantitySold,
	)
	if err != nil {
		return wrap("creating item", err)
	}
	return nil
}

// GetItem returns the item or auctionerrors.ErrItemNotFound.
func (s *SQLiteStore) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	var (
		item          models.Item
		itemType      string
		status        string
		opening, incr sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT item_id, title, description, type, status, opening_min_bid, bid_increment, quantity_total, quantity_sold
		 FROM items WHERE item_id = ?`, itemID,
	).Scan(&item.ItemID, &item.Title, &item.Description, &itemType, &status,
		&opening, &incr, &item.QuantityTotal, &item.QuantitySold)
	if err == sql.ErrNoRows {
		return models.Item{}, fmt.Errorf("getting item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return models.Item{}, wrap("getting item", err)
	}
	item.Type = models.ItemType(itemType)
	item.Status = models.ItemStatus(status)
	if item.OpeningMinBid, err = nullAmount(opening); err != nil {
		return models.Item{}, fmt.Errorf("parsing opening minimum for item %s: %w", itemID, err)
	}
	if item.BidIncrement, err = nullAmount(incr); err != nil {
		return models.Item{}, fmt.Errorf("parsing bid increment for item %s: %w", itemID, err)
	}
	return item, nil
}

// UpdateItemQuantitySold stores the recomputed confirmed signup total.
func (s *SQLiteStore) UpdateItemQuantitySold(ctx context.Context, itemID string, sold int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE items SET quantity_sold = ? WHERE item_id = ?`, sold, itemID)
	if err != nil {
		return wrap("updating quantity sold", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating quantity sold for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return nil
}

// ListProxyBids returns every proxy bid for the item.
func (s *SQLiteStore) ListProxyBids(ctx context.Context, itemID string) ([]models.ProxyBid, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, bidder_id, max_amount, seats, updated_at
		 FROM proxy_bids WHERE item_id = ? ORDER BY updated_at, bidder_id`, itemID)
	if err != nil {
		return nil, wrap("listing proxy bids", err)
	}
	defer rows.Close()

	var bids []models.ProxyBid
	for rows.Next() {
		var (
			b      models.ProxyBid
			amount string
		)
		if err := rows.Scan(&b.ItemID, &b.BidderID, &amount, &b.Seats, &b.UpdatedAt); err != nil {
			return nil, wrap("scanning proxy bid", err)
		}
		if b.MaxAmount, err = scanAmount(amount); err != nil {
			return nil, fmt.Errorf("parsing proxy bid amount: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// UpsertProxyBid creates or replaces the (item, bidder) proxy bid.
func (s *SQLiteStore) UpsertProxyBid(ctx context.Context, bid models.ProxyBid) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO proxy_bids (item_id, bidder_id, max_amount, seats, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (item_id, bidder_id) DO UPDATE SET
		   max_amount = excluded.max_amount,
		   seats = excluded.seats,
		   updated_at = excluded.updated_at`,
		bid.ItemID, bid.BidderID, bid.MaxAmount.String(), bid.Seats, bid.UpdatedAt.UTC())
	if err != nil {
		return wrap("upserting proxy bid", err)
	}
	return nil
}

// AppendBid records an audit bid row.
func (s *SQLiteStore) AppendBid(ctx context.Context, bid models.Bid) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bids (bid_id, item_id, bidder_id, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		bid.BidID, bid.ItemID, bid.BidderID, bid.Amount.String(), bid.CreatedAt.UTC())
	if err != nil {
		return wrap("appending bid", err)
	}
	return nil
}

// ListBids returns audit bids with the top bid first.
func (s *SQLiteStore) ListBids(ctx context.Context, itemID string) ([]models.Bid, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bid_id, item_id, bidder_id, amount, created_at
		 FROM bids WHERE item_id = ?
		 ORDER BY CAST(amount AS REAL) DESC, created_at DESC`, itemID)
	if err != nil {
		return nil, wrap("listing bids", err)
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		var (
			b      models.Bid
			amount string
		)
		if err := rows.Scan(&b.BidID, &b.ItemID, &b.BidderID, &amount, &b.CreatedAt); err != nil {
			return nil, wrap("scanning bid", err)
		}
		if b.Amount, err = scanAmount(amount); err != nil {
			return nil, fmt.Errorf("parsing bid amount: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// ListSignups returns the item's signups in creation (FIFO) order.
func (s *SQLiteStore) ListSignups(ctx context.Context, itemID string) ([]models.Signup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, user_id, quantity, waitlisted, created_at
		 FROM signups WHERE item_id = ? ORDER BY created_at, user_id`, itemID)
	if err != nil {
		return nil, wrap("listing signups", err)
	}
	defer rows.Close()

	var signups []models.Signup
	for rows.Next() {
		var su models.Signup
		if err := rows.Scan(&su.ItemID, &su.UserID, &su.Quantity, &su.Waitlisted, &su.CreatedAt); err != nil {
			return nil, wrap("scanning signup", err)
		}
		signups = append(signups, su)
	}
	return signups, rows.Err()
}

// GetSignup returns the (item, user) signup or auctionerrors.ErrNoSignup.
func (s *SQLiteStore) GetSignup(ctx context.Context, itemID, userID string) (models.Signup, error) {
	var su models.Signup
	err := s.db.QueryRowContext(ctx,
		`SELECT item_id, user_id, quantity, waitlisted, created_at
		 FROM signups WHERE item_id = ? AND user_id = ?`, itemID, userID,
	).Scan(&su.ItemID, &su.UserID, &su.Quantity, &su.Waitlisted, &su.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Signup{}, fmt.Errorf("getting signup for user %s on item %s: %w",
			userID, itemID, auctionerrors.ErrNoSignup)
	}
	if err != nil {
		return models.Signup{}, wrap("getting signup", err)
	}
	return su, nil
}

// CreateSignup inserts a new signup row.
func (s *SQLiteStore) CreateSignup(ctx context.Context, signup models.Signup) error {
	createdAt := signup.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO signups (item_id, user_id, quantity, waitlisted, created_at) VALUES (?, ?, ?, ?, ?)`,
		signup.ItemID, signup.UserID, signup.Quantity, signup.Waitlisted, createdAt.UTC())
	if err != nil {
		return wrap("creating signup", err)
	}
	return nil
}

// UpdateSignup rewrites quantity and waitlist state for the (item, user)
// pair. CreatedAt is never touched so waitlist priority is preserved.
func (s *SQLiteStore) UpdateSignup(ctx context.Context, signup models.Signup) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE signups SET quantity = ?, waitlisted = ? WHERE item_id = ? AND user_id = ?`,
		signup.Quantity, signup.Waitlisted, signup.ItemID, signup.UserID)
	if err != nil {
		return wrap("updating signup", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating signup for user %s on item %s: %w",
			signup.UserID, signup.ItemID, auctionerrors.ErrNoSignup)
	}
	return nil
}

// DeleteSignup removes the (item, user) signup if it exists.
func (s *SQLiteStore) DeleteSignup(ctx context.Context, itemID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM signups WHERE item_id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return wrap("deleting signup", err)
	}
	return nil
}
