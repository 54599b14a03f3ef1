package repository

import (
	"database/sql"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteRepo is an AuctionStore backed by a sqlite database. It exists so
// deployments can keep listings across restarts; the memory repo stays the
// default.
type SQLiteRepo struct {
	conn *sql.DB
}

// NewSQLiteRepo opens the database at path and runs migrations.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	// Writes go through transactions; a single connection avoids
	// SQLITE_BUSY on concurrent bids.
	conn.SetMaxOpenConns(1)

	repo := &SQLiteRepo{conn: conn}
	if err := repo.migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepo) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			image_url TEXT NOT NULL,
			current_bid REAL NOT NULL,
			end_date DATETIME NOT NULL,
			owner_id INTEGER NOT NULL,
			paid INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS bids (
			bid_id TEXT PRIMARY KEY,
			item_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			username TEXT NOT NULL,
			amount REAL NOT NULL,
			date DATETIME NOT NULL,
			FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_item ON bids(item_id, date)`,
	}

	for _, m := range migrations {
		if _, err := r.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepo) Close() error {
	return r.conn.Close()
}

// CreateItem inserts a new listing with id max(existing)+1.
func (r *SQLiteRepo) CreateItem(ownerID int64, title, description, imageURL string, startBid float64, endDate time.Time) (model.AuctionItem, error) {
	tx, err := r.conn.Begin()
	if err != nil {
		return model.AuctionItem{}, err
	}
	defer tx.Rollback()

	var maxID int64
	if err := tx.QueryRow("SELECT COALESCE(MAX(id), 0) FROM items").Scan(&maxID); err != nil {
		return model.AuctionItem{}, err
	}

	id := maxID + 1
	_, err = tx.Exec(
		"INSERT INTO items (id, title, description, image_url, current_bid, end_date, owner_id, paid) VALUES (?, ?, ?, ?, ?, ?, ?, 0)",
		id, title, description, imageURL, startBid, endDate.UTC(), ownerID,
	)
	if err != nil {
		return model.AuctionItem{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.AuctionItem{}, err
	}

	return r.GetItem(id)
}

// EditItem applies the requested changes; end date and starting bid are
// frozen once the item has bids, same rule as the memory repo.
func (r *SQLiteRepo) EditItem(itemID int64, edit ItemEdit) (model.AuctionItem, error) {
	tx, err := r.conn.Begin()
	if err != nil {
		return model.AuctionItem{}, err
	}
	defer tx.Rollback()

	var bidCount int
	err = tx.QueryRow("SELECT COUNT(*) FROM bids WHERE item_id = ?", itemID).Scan(&bidCount)
	if err != nil {
		return model.AuctionItem{}, err
	}

	res, err := tx.Exec("UPDATE items SET title = ?, description = ? WHERE id = ?", edit.Title, edit.Description, itemID)
	if err != nil {
		return model.AuctionItem{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.AuctionItem{}, err
	}
	if n == 0 {
		return model.AuctionItem{}, fmt.Errorf("edit item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	if edit.ImageURL != "" {
		if _, err := tx.Exec("UPDATE items SET image_url = ? WHERE id = ?", edit.ImageURL, itemID); err != nil {
			return model.AuctionItem{}, err
		}
	}
	if bidCount == 0 {
		if _, err := tx.Exec("UPDATE items SET current_bid = ? WHERE id = ?", edit.StartBid, itemID); err != nil {
			return model.AuctionItem{}, err
		}
		if !edit.EndDate.IsZero() {
			if _, err := tx.Exec("UPDATE items SET end_date = ? WHERE id = ?", edit.EndDate.UTC(), itemID); err != nil {
				return model.AuctionItem{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return model.AuctionItem{}, err
	}
	return r.GetItem(itemID)
}

// RecordBid appends a bid, re-checking the current price inside the
// transaction so concurrent bids stay strictly increasing.
func (r *SQLiteRepo) RecordBid(itemID int64, bid model.Bid) (model.AuctionItem, error) {
	tx, err := r.conn.Begin()
	if err != nil {
		return model.AuctionItem{}, err
	}
	defer tx.Rollback()

	var current float64
	err = tx.QueryRow("SELECT current_bid FROM items WHERE id = ?", itemID).Scan(&current)
	if err == sql.ErrNoRows {
		return model.AuctionItem{}, fmt.Errorf("record bid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.AuctionItem{}, err
	}
	if bid.Amount <= current {
		return model.AuctionItem{}, fmt.Errorf("record bid for item %d: current bid is %.2f: %w", itemID, current, auctionerrors.ErrBidTooLow)
	}

	_, err = tx.Exec(
		"INSERT INTO bids (bid_id, item_id, user_id, username, amount, date) VALUES (?, ?, ?, ?, ?, ?)",
		bid.BidID, itemID, bid.UserID, bid.Username, bid.Amount, bid.Date.UTC(),
	)
	if err != nil {
		return model.AuctionItem{}, err
	}
	if _, err := tx.Exec("UPDATE items SET current_bid = ? WHERE id = ?", bid.Amount, itemID); err != nil {
		return model.AuctionItem{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.AuctionItem{}, err
	}

	return r.GetItem(itemID)
}

// MarkPaid flags a listing as paid. Idempotent.
func (r *SQLiteRepo) MarkPaid(itemID int64) (model.AuctionItem, error) {
	res, err := r.conn.Exec("UPDATE items SET paid = 1 WHERE id = ?", itemID)
	if err != nil {
		return model.AuctionItem{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.AuctionItem{}, err
	}
	if n == 0 {
		return model.AuctionItem{}, fmt.Errorf("mark paid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return r.GetItem(itemID)
}

// GetItem loads a single listing with its bid history.
func (r *SQLiteRepo) GetItem(itemID int64) (model.AuctionItem, error) {
	row := r.conn.QueryRow(
		"SELECT id, title, description, image_url, current_bid, end_date, owner_id, paid FROM items WHERE id = ?",
		itemID,
	)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return model.AuctionItem{}, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.AuctionItem{}, err
	}

	if err := r.loadBids(&item); err != nil {
		return model.AuctionItem{}, err
	}
	return item, nil
}

// ListItems loads all listings ordered by id.
func (r *SQLiteRepo) ListItems() ([]model.AuctionItem, error) {
	rows, err := r.conn.Query(
		"SELECT id, title, description, image_url, current_bid, end_date, owner_id, paid FROM items ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.AuctionItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		if err := r.loadBids(&items[i]); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []model.AuctionItem{}
	}
	return items, nil
}

// AddItem inserts a fully-formed listing, replacing any row with the same
// id. Used for seeding and tests.
func (r *SQLiteRepo) AddItem(item model.AuctionItem) error {
	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	paid := 0
	if item.Paid {
		paid = 1
	}
	_, err = tx.Exec(
		"INSERT OR REPLACE INTO items (id, title, description, image_url, current_bid, end_date, owner_id, paid) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Title, item.Description, item.ImageURL, item.CurrentBid, item.EndDate.UTC(), item.OwnerID, paid,
	)
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM bids WHERE item_id = ?", item.ID); err != nil {
		return err
	}
	for _, bid := range item.BidHistory {
		_, err = tx.Exec(
			"INSERT INTO bids (bid_id, item_id, user_id, username, amount, date) VALUES (?, ?, ?, ?, ?, ?)",
			bid.BidID, item.ID, bid.UserID, bid.Username, bid.Amount, bid.Date.UTC(),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.AuctionItem, error) {
	var item model.AuctionItem
	var paid int
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.CurrentBid, &item.EndDate, &item.OwnerID, &paid)
	if err != nil {
		return model.AuctionItem{}, err
	}
	item.Paid = paid != 0
	return item, nil
}

func (r *SQLiteRepo) loadBids(item *model.AuctionItem) error {
	rows, err := r.conn.Query(
		"SELECT bid_id, user_id, username, amount, date FROM bids WHERE item_id = ? ORDER BY date, bid_id",
		item.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	item.BidHistory = []model.Bid{}
	item.BidderIDs = []int64{}
	seen := make(map[int64]bool)
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.BidID, &bid.UserID, &bid.Username, &bid.Amount, &bid.Date); err != nil {
			return err
		}
		item.BidHistory = append(item.BidHistory, bid)
		if !seen[bid.UserID] {
			seen[bid.UserID] = true
			item.BidderIDs = append(item.BidderIDs, bid.UserID)
		}
	}
	item.Bids = len(item.BidHistory)
	return rows.Err()
}
