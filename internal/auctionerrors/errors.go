package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrNoBids       = errors.New("no bids found for item")
)

// business logic errors
var (
	ErrInvalidBid   = errors.New("invalid bid")
	ErrBidTooLow    = errors.New("bid amount too low")
	ErrAuctionEnded = errors.New("auction has ended")
	ErrOwnerBid     = errors.New("owner cannot bid on own item")
)

// auth and input errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotOwner           = errors.New("user does not own this item")
	ErrNotWinner          = errors.New("user did not win this auction")
	ErrValidation         = errors.New("validation failed")
	ErrExternalService    = errors.New("external service failed")
)
