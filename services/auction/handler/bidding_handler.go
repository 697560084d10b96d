package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"charity-auction/internal/bidding"
	"charity-auction/internal/engine"
	model "charity-auction/internal/models"
	"charity-auction/services/auction/helpers"
	"charity-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceOrRaiseBid(ctx context.Context, itemID, bidderID string, amount decimal.Decimal, seats int) (bidding.BidResult, error)
	CurrentState(ctx context.Context, itemID string) (engine.Outcome, error)
	ListBids(ctx context.Context, itemID string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", fmt.Errorf("amount %q is not a valid decimal: %w", req.Amount, err))
		return
	}

	result, err := h.service.PlaceOrRaiseBid(c.Request.Context(), itemID, req.UserID, amount, req.Seats)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": itemID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidOutcomeResponse{
		Accepted:  result.Accepted,
		Message:   result.Message,
		SeatsWon:  result.SeatsAfter,
		LeaderID:  result.LeaderID,
		Price:     result.Price.String(),
		Exhausted: result.Exhausted,
	}

	if !result.Accepted {
		// Business-rule rejection: the outcome is reported, nothing changed.
		utils.JSONResponse(c, http.StatusConflict, resp, result.Message)
		utils.Info("PlaceBidHandler: bid rejected", map[string]any{
			"item_id": itemID,
			"user_id": req.UserID,
			"reason":  result.Message,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"item_id":   itemID,
		"user_id":   req.UserID,
		"seats_won": result.SeatsAfter,
		"price":     result.Price.String(),
	})
}

// GetItemStateHandler handles GET /items/:item_id/state
func (h *BiddingHandler) GetItemStateHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	outcome, err := h.service.CurrentState(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemStateHandler: error retrieving state", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	winners := outcome.Winners
	if winners == nil {
		winners = map[string]int{}
	}
	resp := helpers.ItemStateResponse{
		LeaderID:  outcome.LeaderID,
		Price:     outcome.Price.String(),
		Exhausted: outcome.Exhausted,
		Winners:   winners,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "item state retrieved successfully")
	helpers.LogSuccess("GetItemStateHandler", "item state retrieved successfully", map[string]any{
		"item_id": itemID,
		"price":   resp.Price,
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.ListBids(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.BidResponse{
			BidID:     bid.BidID,
			ItemID:    bid.ItemID,
			UserID:    bid.BidderID,
			Amount:    bid.Amount.String(),
			CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(resp),
	})
}
