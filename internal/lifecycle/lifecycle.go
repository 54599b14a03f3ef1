package lifecycle

import (
	"fmt"
	"time"

	model "auction-house/internal/models"
)

// RemainingTime is a calendar-style countdown breakdown: whole days, then
// hours mod 24, minutes mod 60, seconds mod 60, all floored.
type RemainingTime struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsFinished reports whether the auction has ended at the given instant.
func IsFinished(item model.AuctionItem, now time.Time) bool {
	return !now.Before(item.EndDate)
}

// LastBidderID returns the id of the most recent bidder, or 0 if the item
// has no bids.
func LastBidderID(item model.AuctionItem) int64 {
	if len(item.BidHistory) == 0 {
		return 0
	}
	return item.BidHistory[len(item.BidHistory)-1].UserID
}

// IsWinner reports whether the user placed the last bid on a finished
// auction. Always false for an item with no bids.
func IsWinner(item model.AuctionItem, userID int64, now time.Time) bool {
	if !IsFinished(item, now) || len(item.BidHistory) == 0 {
		return false
	}
	return LastBidderID(item) == userID
}

// State derives the lifecycle state of a listing. The paid flag is only
// meaningful once the auction has ended with at least one bid.
func State(item model.AuctionItem, now time.Time) model.LifecycleState {
	if !IsFinished(item, now) {
		return model.StateActive
	}
	if len(item.BidHistory) > 0 && item.Paid {
		return model.StateEndedPaid
	}
	return model.StateEndedUnpaid
}

// Remaining decomposes the time left until endDate. All components are
// zero once the end date has passed.
func Remaining(endDate, now time.Time) RemainingTime {
	diff := endDate.Sub(now)
	if diff <= 0 {
		return RemainingTime{}
	}
	secs := int(diff / time.Second)
	return RemainingTime{
		Days:    secs / 86400,
		Hours:   (secs / 3600) % 24,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

// FormatRelativeTime renders how long ago a moment was, matching the
// wording the clients display next to bid history entries.
func FormatRelativeTime(date, now time.Time) string {
	seconds := int(now.Sub(date).Round(time.Second) / time.Second)

	if seconds < 5 {
		return "agora"
	}
	if seconds < 60 {
		return fmt.Sprintf("%d segundos atrás", seconds)
	}

	minutes := roundDiv(seconds, 60)
	if minutes < 60 {
		if minutes == 1 {
			return "1 minuto atrás"
		}
		return fmt.Sprintf("%d minutos atrás", minutes)
	}

	hours := roundDiv(minutes, 60)
	if hours < 24 {
		if hours == 1 {
			return "1 hora atrás"
		}
		return fmt.Sprintf("%d horas atrás", hours)
	}

	days := roundDiv(hours, 24)
	if days == 1 {
		return "1 dia atrás"
	}
	return fmt.Sprintf("%d dias atrás", days)
}

// roundDiv divides with round-half-up, like Math.round(a/b).
func roundDiv(a, b int) int {
	return (a + b/2) / b
}
