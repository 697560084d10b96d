package handler

import (
	"context"
	"fmt"
	"net/http"

	"charity-auction/internal/signup"
	"charity-auction/services/auction/helpers"
	"charity-auction/utils"

	"github.com/gin-gonic/gin"
)

type SignupServiceInterface interface {
	Signup(ctx context.Context, itemID, userID string, quantity int) (signup.SignupResult, error)
	Adjust(ctx context.Context, itemID, userID string, newQuantity int) (signup.AdjustResult, error)
	Cancel(ctx context.Context, itemID, userID string) (signup.CancelResult, error)
}

type SignupHandler struct {
	service SignupServiceInterface
}

func NewSignupHandler(service SignupServiceInterface) *SignupHandler {
	return &SignupHandler{service: service}
}

// CreateSignupHandler handles POST /items/:item_id/signups
func (h *SignupHandler) CreateSignupHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSignupHandler", err)
		return
	}

	result, err := h.service.Signup(c.Request.Context(), itemID, req.UserID, req.Quantity)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateSignupHandler: failed to create signup", map[string]any{
			"handler": "CreateSignupHandler",
			"item_id": itemID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.SignupResponse{
		Confirmed:  result.Confirmed,
		Waitlisted: result.Waitlisted,
		Quantity:   result.Quantity,
		SpotsLeft:  result.SpotsLeft,
	}

	message := "signup confirmed"
	if result.Waitlisted {
		message = "signup waitlisted"
	}
	utils.JSONResponse(c, http.StatusCreated, resp, message)
	helpers.LogSuccess("CreateSignupHandler", message, map[string]any{
		"item_id":  itemID,
		"user_id":  req.UserID,
		"quantity": result.Quantity,
	})
}

// AdjustSignupHandler handles PATCH /items/:item_id/signups/:user_id
func (h *SignupHandler) AdjustSignupHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	userID := c.Param("user_id")

	var req helpers.AdjustSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdjustSignupHandler", err)
		return
	}

	result, err := h.service.Adjust(c.Request.Context(), itemID, userID, req.Quantity)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AdjustSignupHandler: failed to adjust signup", map[string]any{
			"handler": "AdjustSignupHandler",
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.SignupResponse{
		Confirmed:  result.Applied && !result.Waitlisted,
		Waitlisted: result.Waitlisted,
		Quantity:   result.Quantity,
		SpotsLeft:  result.SpotsLeft,
		Reason:     result.Reason,
		Promoted:   result.Promoted,
	}

	if !result.Applied {
		utils.JSONResponse(c, http.StatusConflict, resp, result.Reason)
		utils.Info("AdjustSignupHandler: adjustment rejected", map[string]any{
			"item_id": itemID,
			"user_id": userID,
			"reason":  result.Reason,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp, "signup adjusted")
	helpers.LogSuccess("AdjustSignupHandler", "signup adjusted", map[string]any{
		"item_id":  itemID,
		"user_id":  userID,
		"quantity": result.Quantity,
		"promoted": result.Promoted,
	})
}

// CancelSignupHandler handles DELETE /items/:item_id/signups/:user_id
func (h *SignupHandler) CancelSignupHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	userID := c.Param("user_id")

	result, err := h.service.Cancel(c.Request.Context(), itemID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelSignupHandler: failed to cancel signup", map[string]any{
			"handler": "CancelSignupHandler",
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if !result.Applied {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("no signup for user %s on item %s", userID, itemID), "signup not found")
		utils.Info("CancelSignupHandler: nothing to cancel", map[string]any{
			"item_id": itemID,
			"user_id": userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"promoted": result.Promoted}, "signup canceled")
	helpers.LogSuccess("CancelSignupHandler", "signup canceled", map[string]any{
		"item_id":  itemID,
		"user_id":  userID,
		"promoted": result.Promoted,
	})
}
