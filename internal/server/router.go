package server

import (
	"auction-house/internal/auth"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, sessionHandler *handler.SessionHandler, authService *auth.Service) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	requireSession := SessionMiddleware(authService)

	router.POST("/login", sessionHandler.LoginHandler)
	router.POST("/logout", requireSession, sessionHandler.LogoutHandler)

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.BidHistoryHandler)

		items.POST("", requireSession, auctionHandler.CreateListingHandler)
		items.PUT("/:item_id", requireSession, auctionHandler.EditListingHandler)
		items.POST("/:item_id/bids", requireSession, auctionHandler.PlaceBidHandler)
		items.POST("/:item_id/pay", requireSession, auctionHandler.PayHandler)
	}

	views := router.Group("/views", requireSession)
	{
		views.GET("/my-auctions", auctionHandler.MyAuctionsHandler)
		views.GET("/my-bids", auctionHandler.MyBidsHandler)
	}

	router.POST("/descriptions", requireSession, auctionHandler.DescribeHandler)

	toasts := router.Group("/toasts", requireSession)
	{
		toasts.GET("", sessionHandler.ListToastsHandler)
		toasts.DELETE("/:toast_id", sessionHandler.DismissToastHandler)
	}

	return router
}
