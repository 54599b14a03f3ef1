package payment

import (
	"context"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/lifecycle"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
)

// DefaultDelay mimics a card processor round trip.
const DefaultDelay = 2 * time.Second

// Processor simulates payment for a won auction: it checks that the card
// fields are present, waits a fixed processing delay, then marks the item
// paid. No real gateway is involved.
type Processor struct {
	store repository.AuctionStore
	delay time.Duration
}

// NewProcessor creates a payment processor over the given store.
func NewProcessor(store repository.AuctionStore, delay time.Duration) *Processor {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Processor{store: store, delay: delay}
}

// Pay processes payment for an ended auction. Idempotent: paying an
// already-paid item returns immediately with no further effect.
func (p *Processor) Pay(ctx context.Context, itemID int64, card model.CardDetails) (model.AuctionItem, error) {
	if card.HolderName == "" || card.Number == "" || card.Expiry == "" || card.CVC == "" {
		return model.AuctionItem{}, fmt.Errorf("pay item %d: missing card fields: %w", itemID, auctionerrors.ErrValidation)
	}

	item, err := p.store.GetItem(itemID)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("pay item %d: %w", itemID, err)
	}
	if !lifecycle.IsFinished(item, time.Now()) || item.Bids == 0 {
		return model.AuctionItem{}, fmt.Errorf("pay item %d: auction not payable: %w", itemID, auctionerrors.ErrValidation)
	}
	if item.Paid {
		return item, nil
	}

	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return model.AuctionItem{}, fmt.Errorf("pay item %d: %w", itemID, ctx.Err())
	}

	paid, err := p.store.MarkPaid(itemID)
	if err != nil {
		return model.AuctionItem{}, fmt.Errorf("pay item %d: %w", itemID, err)
	}
	return paid, nil
}
