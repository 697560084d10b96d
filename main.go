package main

import (
	"context"
	"fmt"
	"os"

	"charity-auction/internal/bidding"
	"charity-auction/internal/config"
	"charity-auction/internal/itemlock"
	model "charity-auction/internal/models"
	"charity-auction/internal/server"
	"charity-auction/internal/signup"
	"charity-auction/internal/store"
	"charity-auction/utils"

	"github.com/shopspring/decimal"
)

func main() {

	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	prepopulateItems(st)

	locks := itemlock.New()
	biddingSvc := bidding.NewBiddingService(st, locks)
	signupSvc := signup.NewSignupService(st, locks)

	router := server.SetupRouter(biddingSvc, signupSvc)

	addr := ":" + cfg.Port
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateItems adds sample items so a fresh database is browsable.
// Existing rows are left untouched.
func prepopulateItems(st *store.SQLiteStore) {
	money := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	items := []model.Item{
		{
			ItemID:        "cruise1",
			Title:         "Sunset Harbor Cruise for Two",
			Description:   "Two seats on a private evening cruise",
			Type:          model.TypeEvent,
			Status:        model.StatusPublished,
			OpeningMinBid: money("50"),
			QuantityTotal: 2,
		},
		{
			ItemID:        "painting1",
			Title:         "Original Watercolor",
			Description:   "Donated by a local artist",
			Type:          model.TypeGood,
			Status:        model.StatusPublished,
			OpeningMinBid: money("100"),
			QuantityTotal: 1,
		},
		{
			ItemID:        "dinner1",
			Title:         "Community Pasta Dinner",
			Description:   "Seat at the spring fundraiser dinner",
			Type:          model.TypeFixedPrice,
			Status:        model.StatusPublished,
			OpeningMinBid: money("15"),
			QuantityTotal: 40,
		},
	}

	for _, item := range items {
		if err := st.CreateItem(context.Background(), item); err != nil {
			utils.Warn("failed to seed item", map[string]any{"item_id": item.ItemID, "error": err.Error()})
		}
	}
}
