package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"charity-auction/internal/bidding"
	"charity-auction/internal/itemlock"
	model "charity-auction/internal/models"
	"charity-auction/internal/server"
	"charity-auction/internal/signup"
	"charity-auction/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SetupTestRouter wires the full stack over an in-memory SQLite database
// and seeds it with the given items.
func SetupTestRouter(t *testing.T, items ...model.Item) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewTestStore(t)
	for _, item := range items {
		if err := st.CreateItem(context.Background(), item); err != nil {
			t.Fatalf("failed to seed item %s: %v", item.ItemID, err)
		}
	}

	locks := itemlock.New()
	biddingService := bidding.NewBiddingService(st, locks)
	signupService := signup.NewSignupService(st, locks)
	return server.SetupRouter(biddingService, signupService)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func eventItem(id string, seats int, opening string) model.Item {
	return model.Item{
		ItemID:        id,
		Title:         "title " + id,
		Type:          model.TypeEvent,
		Status:        model.StatusPublished,
		OpeningMinBid: money(opening),
		QuantityTotal: seats,
	}
}

func fixedItem(id string, capacity int) model.Item {
	return model.Item{
		ItemID:        id,
		Title:         "title " + id,
		Type:          model.TypeFixedPrice,
		Status:        model.StatusPublished,
		OpeningMinBid: money("15"),
		QuantityTotal: capacity,
	}
}
