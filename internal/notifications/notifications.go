package notifications

import (
	"sync"

	"auction-house/internal/lifecycle"
	model "auction-house/internal/models"
)

// bidSnapshot records what a bidder last saw on an item: the price and who
// held the top bid. LastBidder is 0 when the item had no bids.
type bidSnapshot struct {
	CurrentBid float64
	LastBidder int64
}

// Tracker computes unread-activity counts for one user's session by
// diffing listings against the state recorded the last time the matching
// view was opened. It is a cheap stand-in for push notifications: counts
// only move when the view is revisited.
type Tracker struct {
	mu        sync.Mutex
	ownedBids map[int64]int
	myBids    map[int64]bidSnapshot
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ownedBids: make(map[int64]int),
		myBids:    make(map[int64]bidSnapshot),
	}
}

// SeedForUser initializes both snapshot maps from the user's current owned
// and bid-on items. Called at login so the first view open does not report
// every listing as new activity.
func (t *Tracker) SeedForUser(userID int64, items []model.AuctionItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ownedBids = make(map[int64]int)
	t.myBids = make(map[int64]bidSnapshot)

	for _, item := range items {
		if item.OwnerID == userID {
			t.ownedBids[item.ID] = item.Bids
		}
		if containsBidder(item, userID) {
			t.myBids[item.ID] = snapshotOf(item)
		}
	}
}

// OwnedCount returns how many of the user's own listings received bids
// since the "my auctions" view was last opened.
func (t *Tracker) OwnedCount(userID int64, items []model.AuctionItem) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	for _, item := range items {
		if item.OwnerID != userID {
			continue
		}
		if item.Bids > t.ownedBids[item.ID] {
			count++
		}
	}
	return count
}

// MyBidsCount returns how many items the user has bid on were outbid by
// someone else since the "my bids" view was last opened. An item counts
// only when a snapshot exists, the new last bidder is neither the user nor
// the snapshot's bidder, and the price strictly increased.
func (t *Tracker) MyBidsCount(userID int64, items []model.AuctionItem) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	for _, item := range items {
		if !containsBidder(item, userID) {
			continue
		}
		prev, ok := t.myBids[item.ID]
		if !ok {
			continue
		}
		lastBidder := lifecycle.LastBidderID(item)
		if lastBidder != userID && lastBidder != prev.LastBidder && item.CurrentBid > prev.CurrentBid {
			count++
		}
	}
	return count
}

// SnapshotOwned overwrites the owned-auctions snapshot. Called whenever
// the "my auctions" view opens, which clears its badge.
func (t *Tracker) SnapshotOwned(userID int64, items []model.AuctionItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ownedBids = make(map[int64]int)
	for _, item := range items {
		if item.OwnerID == userID {
			t.ownedBids[item.ID] = item.Bids
		}
	}
}

// SnapshotMyBids overwrites the my-bids snapshot. Called whenever the
// "my bids" view opens.
func (t *Tracker) SnapshotMyBids(userID int64, items []model.AuctionItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.myBids = make(map[int64]bidSnapshot)
	for _, item := range items {
		if containsBidder(item, userID) {
			t.myBids[item.ID] = snapshotOf(item)
		}
	}
}

func snapshotOf(item model.AuctionItem) bidSnapshot {
	return bidSnapshot{
		CurrentBid: item.CurrentBid,
		LastBidder: lifecycle.LastBidderID(item),
	}
}

func containsBidder(item model.AuctionItem, userID int64) bool {
	for _, id := range item.BidderIDs {
		if id == userID {
			return true
		}
	}
	return false
}
