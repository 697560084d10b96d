package integrationtests

import (
	"net/http"
	"testing"

	"charity-auction/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

// A full auction round on a single-seat item: first bid opens, an equal
// bid does not displace the earlier one, an underbid is rejected.
func TestAuctionRoundSingleSeat(t *testing.T) {
	router := SetupTestRouter(t, eventItem("item1", 1, "10"))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "x", Amount: "10", Seats: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["accepted"])
	require.Equal(t, "x", data["leader_id"])
	require.Equal(t, "10", data["price"])
	require.Equal(t, false, data["exhausted"])

	// Equal maximum arrives later and does not take the seat.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "y", Amount: "10", Seats: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, true, data["accepted"])
	require.Equal(t, "x", data["leader_id"])
	require.Equal(t, true, data["exhausted"])
	require.Equal(t, 0.0, data["seats_won"])

	// Below the opening minimum once capacity is exhausted.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "z", Amount: "5", Seats: 1})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/item1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "x", data["leader_id"])
	require.Equal(t, "10", data["price"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/item1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 1)
}

// Proxy bidding drives the price one increment over the runner-up, and a
// later raise must clear the standing price plus one increment.
func TestAuctionProxyPriceMovement(t *testing.T) {
	router := SetupTestRouter(t, eventItem("item1", 1, "1"))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "x", Amount: "20", Seats: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "y", Amount: "15", Seats: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "x", data["leader_id"])
	require.Equal(t, "20", data["price"])

	// 12 does not reach 20 plus one increment.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "z", Amount: "12", Seats: 1})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, resp["message"], "21")

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/item1/bids",
		helpers.PlaceBidRequest{UserID: "z", Amount: "25", Seats: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "z", data["leader_id"])
	require.Equal(t, "21", data["price"])
}

// Signup, waitlist, adjustment and cancellation on a fixed-price item.
func TestSignupLifecycle(t *testing.T) {
	router := SetupTestRouter(t, fixedItem("dinner1", 3))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items/dinner1/signups",
		helpers.SignupRequest{UserID: "u1", Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["confirmed"])
	require.Equal(t, 1.0, data["spots_left"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/items/dinner1/signups",
		helpers.SignupRequest{UserID: "u2", Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, true, data["waitlisted"])

	// u1 gives up a seat; u2 now fits and is promoted.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPatch, "/items/dinner1/signups/u1",
		helpers.AdjustSignupRequest{Quantity: 1})
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, 1.0, data["promoted"])
	require.Equal(t, 0.0, data["spots_left"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/items/dinner1/signups/u2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/items/dinner1/signups/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Wrong-surface and missing-item requests map to the right status codes.
func TestSurfaceErrors(t *testing.T) {
	router := SetupTestRouter(t, eventItem("cruise1", 2, "50"), fixedItem("dinner1", 10))

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
	}{
		{
			name:       "bid_on_fixed_price_item",
			method:     http.MethodPost,
			url:        "/items/dinner1/bids",
			body:       helpers.PlaceBidRequest{UserID: "x", Amount: "20", Seats: 1},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "signup_on_biddable_item",
			method:     http.MethodPost,
			url:        "/items/cruise1/signups",
			body:       helpers.SignupRequest{UserID: "u1", Quantity: 1},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "bid_on_unknown_item",
			method:     http.MethodPost,
			url:        "/items/nonexistent/bids",
			body:       helpers.PlaceBidRequest{UserID: "x", Amount: "20", Seats: 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid_json_payload",
			method:     http.MethodPost,
			url:        "/items/cruise1/bids",
			body:       []byte(`{user_id: 'missing quotes'}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_amount",
			method:     http.MethodPost,
			url:        "/items/cruise1/bids",
			body:       helpers.PlaceBidRequest{UserID: "x", Amount: "twenty"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, router, tt.method, tt.url, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
