package helpers

import (
	"time"

	"auction-house/internal/lifecycle"
	model "auction-house/internal/models"
)

// Request/Response DTOs
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateListingRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"image_url" binding:"required"`
	StartBid    float64   `json:"start_bid" binding:"required,gt=0"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

type EditListingRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"image_url"`
	StartBid    float64   `json:"start_bid"`
	EndDate     time.Time `json:"end_date"`
}

type PayRequest struct {
	HolderName string `json:"holder_name" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVC        string `json:"cvc" binding:"required"`
}

type DescribeRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageData string `json:"image_data" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
}

type DescribeResponse struct {
	Description string `json:"description"`
	Generated   bool   `json:"generated"`
}

type ItemResponse struct {
	model.AuctionItem
	State         model.LifecycleState    `json:"state"`
	RemainingTime lifecycle.RemainingTime `json:"remaining_time"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	UserID       int64   `json:"user_id"`
	Username     string  `json:"username"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	RelativeDate string  `json:"relative_date"`
}

type ViewResponse struct {
	Items  []ItemResponse `json:"items"`
	Unread int            `json:"unread"`
}

// NewItemResponse decorates a listing with its derived lifecycle fields.
func NewItemResponse(item model.AuctionItem, now time.Time) ItemResponse {
	return ItemResponse{
		AuctionItem:   item,
		State:         lifecycle.State(item, now),
		RemainingTime: lifecycle.Remaining(item.EndDate, now),
	}
}

// NewBidResponse decorates a bid with its display-relative timestamp.
func NewBidResponse(bid model.Bid, now time.Time) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		UserID:       bid.UserID,
		Username:     bid.Username,
		Amount:       bid.Amount,
		Date:         bid.Date.UTC().Format(time.RFC3339),
		RelativeDate: lifecycle.FormatRelativeTime(bid.Date, now),
	}
}
