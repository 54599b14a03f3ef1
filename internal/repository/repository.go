package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// AuctionStore defines the listing storage interface for the auction house
type AuctionStore interface {
	CreateItem(ownerID int64, title, description, imageURL string, startBid float64, endDate time.Time) (model.AuctionItem, error)
	EditItem(itemID int64, edit ItemEdit) (model.AuctionItem, error)
	RecordBid(itemID int64, bid model.Bid) (model.AuctionItem, error)
	MarkPaid(itemID int64) (model.AuctionItem, error)
	GetItem(itemID int64) (model.AuctionItem, error)
	ListItems() ([]model.AuctionItem, error)
}

// ItemEdit carries the editable fields of a listing. StartBid and EndDate
// are ignored by the store when the item already has bids.
type ItemEdit struct {
	Title       string
	Description string
	ImageURL    string
	StartBid    float64
	EndDate     time.Time
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[int64]*model.AuctionItem
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items: make(map[int64]*model.AuctionItem),
	}
}

// CreateItem adds a new listing. The assigned id is strictly greater than
// any existing id (max+1, or 1 for an empty store).
func (r *MemoryRepo) CreateItem(ownerID int64, title, description, imageURL string, startBid float64, endDate time.Time) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for id := range r.items {
		if id > maxID {
			maxID = id
		}
	}

	item := &model.AuctionItem{
		ID:          maxID + 1,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		CurrentBid:  startBid,
		EndDate:     endDate,
		OwnerID:     ownerID,
		Bids:        0,
		BidderIDs:   []int64{},
		BidHistory:  []model.Bid{},
	}
	r.items[item.ID] = item

	return copyItem(item), nil
}

// EditItem applies the requested changes to an existing listing. Once the
// item has bids, the current bid and end date stay untouched regardless of
// the payload; the store is the source of truth for this rule.
func (r *MemoryRepo) EditItem(itemID int64, edit ItemEdit) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("edit item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	item.Title = edit.Title
	item.Description = edit.Description
	if edit.ImageURL != "" {
		item.ImageURL = edit.ImageURL
	}
	if item.Bids == 0 {
		item.CurrentBid = edit.StartBid
		if !edit.EndDate.IsZero() {
			item.EndDate = edit.EndDate
		}
	}

	return copyItem(item), nil
}

// RecordBid appends a bid to a listing. The price check is repeated under
// the write lock so two racing bids cannot both land at the same amount.
func (r *MemoryRepo) RecordBid(itemID int64, bid model.Bid) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("record bid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if bid.Amount <= item.CurrentBid {
		return model.AuctionItem{}, fmt.Errorf("record bid for item %d: current bid is %.2f: %w", itemID, item.CurrentBid, auctionerrors.ErrBidTooLow)
	}

	item.BidHistory = append(item.BidHistory, bid)
	item.CurrentBid = bid.Amount
	item.Bids = len(item.BidHistory)

	found := false
	for _, id := range item.BidderIDs {
		if id == bid.UserID {
			found = true
			break
		}
	}
	if !found {
		item.BidderIDs = append(item.BidderIDs, bid.UserID)
	}

	return copyItem(item), nil
}

// MarkPaid flags a listing as paid. Idempotent.
func (r *MemoryRepo) MarkPaid(itemID int64) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("mark paid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	item.Paid = true

	return copyItem(item), nil
}

// GetItem returns a copy of a single listing
func (r *MemoryRepo) GetItem(itemID int64) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return copyItem(item), nil
}

// ListItems returns copies of all listings ordered by id
func (r *MemoryRepo) ListItems() ([]model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.AuctionItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, copyItem(item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AddItem inserts a fully-formed listing, overwriting any existing entry
// with the same id. Used for seeding and tests.
func (r *MemoryRepo) AddItem(item model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := copyItem(&item)
	r.items[item.ID] = &stored
	return nil
}

// copyItem returns a deep copy so callers never alias stored slices.
func copyItem(item *model.AuctionItem) model.AuctionItem {
	out := *item
	out.BidderIDs = append([]int64(nil), item.BidderIDs...)
	out.BidHistory = append([]model.Bid(nil), item.BidHistory...)
	return out
}
