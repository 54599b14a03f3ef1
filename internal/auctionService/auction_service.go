package auction

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/lifecycle"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// AuctionService defines the business logic for the auction house
type AuctionService struct {
	store repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

// PlaceBid validates and records a user's bid on a listing. now is
// injected so the end-date check stays testable.
func (s *AuctionService) PlaceBid(itemID int64, bidder models.User, amount float64, now time.Time) (models.AuctionItem, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.AuctionItem{}, fmt.Errorf("service: %w - amount must be a positive finite number", auctionerrors.ErrInvalidBid)
	}

	item, err := s.store.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to load item %d: %w", itemID, err)
	}

	if lifecycle.IsFinished(item, now) {
		return models.AuctionItem{}, fmt.Errorf("service: %w: %w", auctionerrors.ErrInvalidBid, auctionerrors.ErrAuctionEnded)
	}
	if item.OwnerID == bidder.ID {
		return models.AuctionItem{}, fmt.Errorf("service: %w: %w", auctionerrors.ErrInvalidBid, auctionerrors.ErrOwnerBid)
	}
	if amount <= item.CurrentBid {
		return models.AuctionItem{}, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, item.CurrentBid)
	}

	bid := models.Bid{
		BidID:    utils.GenerateID(),
		UserID:   bidder.ID,
		Username: bidder.Username,
		Amount:   amount,
		Date:     now.UTC(),
	}

	// The store repeats the price check under its write lock, so a
	// concurrent bid that landed first wins here with ErrBidTooLow.
	updated, err := s.store.RecordBid(itemID, bid)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to record bid for item %d by user %d: %w", itemID, bidder.ID, err)
	}

	return updated, nil
}

// CreateListing validates and creates a new auction listing.
func (s *AuctionService) CreateListing(ownerID int64, title, description, imageURL string, startBid float64, endDate, now time.Time) (models.AuctionItem, error) {
	if title == "" || description == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - title and description are required", auctionerrors.ErrValidation)
	}
	if imageURL == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - an image is required for a new listing", auctionerrors.ErrValidation)
	}
	if startBid <= 0 || math.IsNaN(startBid) || math.IsInf(startBid, 0) {
		return models.AuctionItem{}, fmt.Errorf("service: %w - starting bid must be a positive number", auctionerrors.ErrValidation)
	}
	if !endDate.After(now) {
		return models.AuctionItem{}, fmt.Errorf("service: %w - end date must be in the future", auctionerrors.ErrValidation)
	}

	item, err := s.store.CreateItem(ownerID, title, description, imageURL, startBid, endDate)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to create listing for user %d: %w", ownerID, err)
	}
	return item, nil
}

// EditListing applies changes to a listing the user owns. The store keeps
// end date and starting bid frozen once bids exist; finished auctions are
// not editable.
func (s *AuctionService) EditListing(userID, itemID int64, edit repository.ItemEdit, now time.Time) (models.AuctionItem, error) {
	if edit.Title == "" || edit.Description == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - title and description are required", auctionerrors.ErrValidation)
	}

	item, err := s.store.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to load item %d: %w", itemID, err)
	}
	if item.OwnerID != userID {
		return models.AuctionItem{}, fmt.Errorf("service: user %d cannot edit item %d: %w", userID, itemID, auctionerrors.ErrNotOwner)
	}
	if lifecycle.IsFinished(item, now) {
		return models.AuctionItem{}, fmt.Errorf("service: %w - finished auctions cannot be edited", auctionerrors.ErrValidation)
	}
	if item.Bids == 0 {
		if edit.StartBid <= 0 || math.IsNaN(edit.StartBid) || math.IsInf(edit.StartBid, 0) {
			return models.AuctionItem{}, fmt.Errorf("service: %w - starting bid must be a positive number", auctionerrors.ErrValidation)
		}
		if !edit.EndDate.IsZero() && !edit.EndDate.After(now) {
			return models.AuctionItem{}, fmt.Errorf("service: %w - end date must be in the future", auctionerrors.ErrValidation)
		}
	}

	updated, err := s.store.EditItem(itemID, edit)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to edit item %d: %w", itemID, err)
	}
	return updated, nil
}

// GetItem returns a single listing.
func (s *AuctionService) GetItem(itemID int64) (models.AuctionItem, error) {
	item, err := s.store.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	return item, nil
}

// AllItems returns every listing, soonest-ending first.
func (s *AuctionService) AllItems() ([]models.AuctionItem, error) {
	items, err := s.store.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EndDate.Before(items[j].EndDate)
	})
	return items, nil
}

// MyAuctions returns the user's own listings, latest-ending first.
func (s *AuctionService) MyAuctions(userID int64) ([]models.AuctionItem, error) {
	return s.filterSorted(func(item models.AuctionItem) bool {
		return item.OwnerID == userID
	})
}

// MyBids returns the listings the user has ever bid on, latest-ending first.
func (s *AuctionService) MyBids(userID int64) ([]models.AuctionItem, error) {
	return s.filterSorted(func(item models.AuctionItem) bool {
		for _, id := range item.BidderIDs {
			if id == userID {
				return true
			}
		}
		return false
	})
}

// BidHistory returns the bids on a listing, newest first.
func (s *AuctionService) BidHistory(itemID int64) ([]models.Bid, error) {
	item, err := s.store.GetItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}
	if len(item.BidHistory) == 0 {
		return nil, fmt.Errorf("service: item %d: %w", itemID, auctionerrors.ErrNoBids)
	}

	bids := append([]models.Bid(nil), item.BidHistory...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Date.After(bids[j].Date)
	})
	return bids, nil
}

// filterSorted selects listings and orders them latest-ending first, the
// order the personal views display.
func (s *AuctionService) filterSorted(keep func(models.AuctionItem) bool) ([]models.AuctionItem, error) {
	all, err := s.store.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}

	items := make([]models.AuctionItem, 0, len(all))
	for _, item := range all {
		if keep(item) {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EndDate.After(items[j].EndDate)
	})
	return items, nil
}

// IsNotFound reports whether an error chain ends at a missing item.
func IsNotFound(err error) bool {
	return errors.Is(err, auctionerrors.ErrItemNotFound)
}
