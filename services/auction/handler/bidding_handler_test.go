package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charity-auction/internal/auctionerrors"
	"charity-auction/internal/bidding"
	"charity-auction/internal/engine"
	model "charity-auction/internal/models"
	"charity-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items/:item_id/bids", handler.PlaceBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_accepted_bid",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: "100",
				Seats:  1,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceOrRaiseBid(gomock.Any(), "item1", "user1", dec("100"), 1).
					Return(bidding.BidResult{
						Accepted:   true,
						Message:    "now winning 1 seat(s)",
						SeatsAfter: 1,
						LeaderID:   "user1",
						Price:      dec("10"),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid accepted",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, true, data["accepted"])
				require.Equal(t, "user1", data["leader_id"])
				require.Equal(t, "10", data["price"])
				require.Equal(t, 1.0, data["seats_won"])
			},
		},
		{
			name: "rejected_bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user2",
				Amount: "12",
				Seats:  1,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceOrRaiseBid(gomock.Any(), "item1", "user2", dec("12"), 1).
					Return(bidding.BidResult{
						Accepted:  false,
						Message:   "bid must be at least 21",
						LeaderID:  "user1",
						Price:     dec("20"),
						Exhausted: true,
					}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid must be at least 21",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, false, data["accepted"])
				require.Equal(t, "user1", data["leader_id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_user_id",
			requestBody: helpers.PlaceBidRequest{
				UserID: "",
				Amount: "50",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "malformed_amount",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: "not-a-number",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "item_not_found",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: "50",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceOrRaiseBid(gomock.Any(), "item1", "user1", dec("50"), 0).
					Return(bidding.BidResult{}, auctionerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name: "item_not_biddable",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: "50",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceOrRaiseBid(gomock.Any(), "item1", "user1", dec("50"), 0).
					Return(bidding.BidResult{}, auctionerrors.ErrNotBiddable)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "item is not open for bidding",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: "100",
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceOrRaiseBid(gomock.Any(), "item1", "user1", dec("100"), 0).
					Return(bidding.BidResult{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/items/item1/bids", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetItemStateHandler
func TestGetItemStateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items/:item_id/state", handler.GetItemStateHandler)

	tests := []struct {
		name           string
		itemID         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:   "success_with_winners",
			itemID: "item1",
			mockSetup: func() {
				mockService.EXPECT().
					CurrentState(gomock.Any(), "item1").
					Return(engine.Outcome{
						LeaderID:  "user1",
						Price:     dec("20"),
						Exhausted: true,
						Winners:   map[string]int{"user1": 2, "user2": 1},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "item state retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "user1", data["leader_id"])
				require.Equal(t, "20", data["price"])
				require.Equal(t, true, data["exhausted"])
				winners := data["winners"].(map[string]any)
				require.Equal(t, 2.0, winners["user1"])
				require.Equal(t, 1.0, winners["user2"])
			},
		},
		{
			name:   "success_no_bids",
			itemID: "item2",
			mockSetup: func() {
				mockService.EXPECT().
					CurrentState(gomock.Any(), "item2").
					Return(engine.Outcome{Price: dec("10")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "item state retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "", data["leader_id"])
				require.Equal(t, "10", data["price"])
				require.Equal(t, false, data["exhausted"])
				require.Empty(t, data["winners"])
			},
		},
		{
			name:   "item_not_found",
			itemID: "missing",
			mockSetup: func() {
				mockService.EXPECT().
					CurrentState(gomock.Any(), "missing").
					Return(engine.Outcome{}, auctionerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/items/%s/state", tc.itemID), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetBidsByItemHandler
func TestGetBidsByItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items/:item_id/bids", handler.GetBidsByItemHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		itemID         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name:   "success_top_bid_first",
			itemID: "item1",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids(gomock.Any(), "item1").
					Return([]model.Bid{
						{BidID: uuid.NewString(), ItemID: "item1", BidderID: "user2", Amount: dec("150"), CreatedAt: now},
						{BidID: uuid.NewString(), ItemID: "item1", BidderID: "user1", Amount: dec("100"), CreatedAt: now},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 2)
				require.Equal(t, "150", data[0]["amount"])
				require.Equal(t, "user2", data[0]["user_id"])
				require.Equal(t, "100", data[1]["amount"])
			},
		},
		{
			name:   "success_no_bids",
			itemID: "item2",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids(gomock.Any(), "item2").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 0)
			},
		},
		{
			name:   "service_generic_error",
			itemID: "item3",
			mockSetup: func() {
				mockService.EXPECT().
					ListBids(gomock.Any(), "item3").
					Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/items/%s/bids", tc.itemID), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}
