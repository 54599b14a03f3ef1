package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	"auction-house/internal/describe"
	"auction-house/internal/lifecycle"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SessionContextKey is where the session middleware stores the resolved
// *auth.Session on the gin context.
const SessionContextKey = "session"

type AuctionServiceInterface interface {
	PlaceBid(itemID int64, bidder model.User, amount float64, now time.Time) (model.AuctionItem, error)
	CreateListing(ownerID int64, title, description, imageURL string, startBid float64, endDate, now time.Time) (model.AuctionItem, error)
	EditListing(userID, itemID int64, edit repository.ItemEdit, now time.Time) (model.AuctionItem, error)
	GetItem(itemID int64) (model.AuctionItem, error)
	AllItems() ([]model.AuctionItem, error)
	MyAuctions(userID int64) ([]model.AuctionItem, error)
	MyBids(userID int64) ([]model.AuctionItem, error)
	BidHistory(itemID int64) ([]model.Bid, error)
}

type PaymentProcessorInterface interface {
	Pay(ctx context.Context, itemID int64, card model.CardDetails) (model.AuctionItem, error)
}

type AuctionHandler struct {
	service   AuctionServiceInterface
	payments  PaymentProcessorInterface
	describer describe.Generator
}

func NewAuctionHandler(service AuctionServiceInterface, payments PaymentProcessorInterface, describer describe.Generator) *AuctionHandler {
	return &AuctionHandler{service: service, payments: payments, describer: describer}
}

// sessionFrom pulls the authenticated session placed by the middleware.
func sessionFrom(c *gin.Context) *auth.Session {
	return c.MustGet(SessionContextKey).(*auth.Session)
}

func itemIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid item id %q", c.Param("item_id")), "invalid item id")
		return 0, false
	}
	return id, true
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.AllItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListItemsHandler: failed to list items", map[string]any{"error": err.Error()})
		return
	}

	now := time.Now()
	resp := make([]helpers.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, helpers.NewItemResponse(item, now))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, time.Now()), "item retrieved successfully")
}

// CreateListingHandler handles POST /items
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	session := sessionFrom(c)

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	item, err := h.service.CreateListing(session.User.ID, req.Title, req.Description, req.ImageURL, req.StartBid, req.EndDate, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateListingHandler: failed to create listing", map[string]any{
			"owner_id": session.User.ID,
			"error":    err.Error(),
		})
		return
	}

	session.Toasts.Push("Leilão criado com sucesso!", model.ToastSuccess)
	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item, time.Now()), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"item_id":  item.ID,
		"owner_id": session.User.ID,
		"title":    item.Title,
	})
}

// EditListingHandler handles PUT /items/:item_id
func (h *AuctionHandler) EditListingHandler(c *gin.Context) {
	session := sessionFrom(c)
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req helpers.EditListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditListingHandler", err)
		return
	}

	edit := repository.ItemEdit{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StartBid:    req.StartBid,
		EndDate:     req.EndDate,
	}
	item, err := h.service.EditListing(session.User.ID, itemID, edit, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EditListingHandler: failed to edit listing", map[string]any{
			"item_id": itemID,
			"user_id": session.User.ID,
			"error":   err.Error(),
		})
		return
	}

	session.Toasts.Push("Leilão atualizado com sucesso!", model.ToastSuccess)
	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, time.Now()), "listing updated successfully")
	helpers.LogSuccess("EditListingHandler", "listing updated successfully", map[string]any{
		"item_id": item.ID,
		"user_id": session.User.ID,
	})
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	session := sessionFrom(c)
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	item, err := h.service.PlaceBid(itemID, session.User, req.Amount, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id": itemID,
			"user_id": session.User.ID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return
	}

	session.Toasts.Push("Lance realizado com sucesso!", model.ToastSuccess)
	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item, time.Now()), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"item_id": item.ID,
		"user_id": session.User.ID,
		"amount":  utils.FormatBRL(req.Amount),
	})
}

// BidHistoryHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) BidHistoryHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	bids, err := h.service.BidHistory(itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidHistoryHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	now := time.Now()
	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.NewBidResponse(bid, now))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// PayHandler handles POST /items/:item_id/pay
func (h *AuctionHandler) PayHandler(c *gin.Context) {
	session := sessionFrom(c)
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req helpers.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PayHandler", err)
		return
	}

	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if !lifecycle.IsWinner(item, session.User.ID, time.Now()) {
		err := fmt.Errorf("user %d cannot pay for item %d: %w", session.User.ID, itemID, auctionerrors.ErrNotWinner)
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("PayHandler: non-winner payment attempt", map[string]any{"item_id": itemID, "user_id": session.User.ID})
		return
	}

	card := model.CardDetails{
		HolderName: req.HolderName,
		Number:     req.Number,
		Expiry:     req.Expiry,
		CVC:        req.CVC,
	}
	paid, err := h.payments.Pay(c.Request.Context(), itemID, card)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PayHandler: payment failed", map[string]any{"item_id": itemID, "user_id": session.User.ID, "error": err.Error()})
		return
	}

	session.Toasts.Push("Pagamento confirmado com sucesso!", model.ToastSuccess)
	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(paid, time.Now()), "payment confirmed successfully")
	helpers.LogSuccess("PayHandler", "payment confirmed successfully", map[string]any{
		"item_id": paid.ID,
		"user_id": session.User.ID,
		"amount":  utils.FormatBRL(paid.CurrentBid),
	})
}

// MyAuctionsHandler handles GET /views/my-auctions. Opening the view
// returns the unread count accumulated since the previous visit, then
// re-snapshots so the badge clears.
func (h *AuctionHandler) MyAuctionsHandler(c *gin.Context) {
	session := sessionFrom(c)

	items, err := h.service.MyAuctions(session.User.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	unread := session.Tracker.OwnedCount(session.User.ID, items)
	session.Tracker.SnapshotOwned(session.User.ID, items)

	utils.JSONResponse(c, http.StatusOK, viewResponse(items, unread), "my auctions retrieved successfully")
}

// MyBidsHandler handles GET /views/my-bids, same snapshot semantics as
// MyAuctionsHandler.
func (h *AuctionHandler) MyBidsHandler(c *gin.Context) {
	session := sessionFrom(c)

	items, err := h.service.MyBids(session.User.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	unread := session.Tracker.MyBidsCount(session.User.ID, items)
	session.Tracker.SnapshotMyBids(session.User.ID, items)

	utils.JSONResponse(c, http.StatusOK, viewResponse(items, unread), "my bids retrieved successfully")
}

// DescribeHandler handles POST /descriptions. Generation failures are
// recovered with a static fallback text so the caller can always proceed.
func (h *AuctionHandler) DescribeHandler(c *gin.Context) {
	var req helpers.DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DescribeHandler", err)
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid image data: %w", err), "invalid image data")
		return
	}

	text, err := h.describer.Generate(c.Request.Context(), req.Title, imageData, req.MimeType)
	if err != nil {
		utils.Warn("DescribeHandler: generation failed, using fallback", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		utils.JSONResponse(c, http.StatusOK, helpers.DescribeResponse{
			Description: describe.FallbackDescription,
			Generated:   false,
		}, "description fallback returned")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DescribeResponse{Description: text, Generated: true}, "description generated successfully")
}

func viewResponse(items []model.AuctionItem, unread int) helpers.ViewResponse {
	now := time.Now()
	resp := helpers.ViewResponse{Items: make([]helpers.ItemResponse, 0, len(items)), Unread: unread}
	for _, item := range items {
		resp.Items = append(resp.Items, helpers.NewItemResponse(item, now))
	}
	return resp
}
