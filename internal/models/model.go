package models

import "time"

// User represents a participant in the auction house
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Bid represents a user's bid on an auction item. Bids are append-only:
// once recorded they are never edited or removed.
type Bid struct {
	BidID    string    `json:"bid_id"`
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// AuctionItem represents a listing up for auction.
//
// Invariants maintained by the repository:
//   - Bids == len(BidHistory)
//   - BidderIDs is the deduplicated set of BidHistory userIDs
//   - CurrentBid is the amount of the last bid, or the starting bid if none
type AuctionItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CurrentBid  float64   `json:"current_bid"`
	EndDate     time.Time `json:"end_date"`
	OwnerID     int64     `json:"owner_id"`
	Bids        int       `json:"bids"`
	BidderIDs   []int64   `json:"bidder_ids"`
	BidHistory  []Bid     `json:"bid_history"`
	Paid        bool      `json:"paid"`
}

// LifecycleState is the derived state of a listing. Paid only becomes
// visible once the auction has ended with at least one bid.
type LifecycleState string

const (
	StateActive      LifecycleState = "active"
	StateEndedUnpaid LifecycleState = "ended_unpaid"
	StateEndedPaid   LifecycleState = "ended_paid"
)

// ToastType classifies a transient user-facing message.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// ToastMessage is a transient user-facing message. Toasts auto-expire and
// at most five are retained per session.
type ToastMessage struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}

// CardDetails carries the card fields for the simulated payment flow.
// Only presence is checked, no real validation happens.
type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}
