package server

import (
	"charity-auction/internal/bidding"
	"charity-auction/internal/signup"
	handler "charity-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, signupService *signup.SignupService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	signupHandler := handler.NewSignupHandler(signupService)

	items := router.Group("/items")
	{
		items.POST("/:item_id/bids", biddingHandler.PlaceBidHandler)
		items.GET("/:item_id/bids", biddingHandler.GetBidsByItemHandler)
		items.GET("/:item_id/state", biddingHandler.GetItemStateHandler)

		items.POST("/:item_id/signups", signupHandler.CreateSignupHandler)
		items.PATCH("/:item_id/signups/:user_id", signupHandler.AdjustSignupHandler)
		items.DELETE("/:item_id/signups/:user_id", signupHandler.CancelSignupHandler)
	}

	return router
}
