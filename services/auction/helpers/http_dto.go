package helpers

// Request/Response DTOs. Monetary amounts travel as decimal strings.
type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Seats  int    `json:"seats" binding:"omitempty,gte=1"`
}

type BidOutcomeResponse struct {
	Accepted  bool   `json:"accepted"`
	Message   string `json:"message"`
	SeatsWon  int    `json:"seats_won"`
	LeaderID  string `json:"leader_id"`
	Price     string `json:"price"`
	Exhausted bool   `json:"exhausted"`
}

type ItemStateResponse struct {
	LeaderID  string         `json:"leader_id"`
	Price     string         `json:"price"`
	Exhausted bool           `json:"exhausted"`
	Winners   map[string]int `json:"winners"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	ItemID    string `json:"item_id"`
	UserID    string `json:"user_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type SignupRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

type AdjustSignupRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

type SignupResponse struct {
	Confirmed  bool   `json:"confirmed"`
	Waitlisted bool   `json:"waitlisted"`
	Quantity   int    `json:"quantity"`
	SpotsLeft  int    `json:"spots_left"`
	Reason     string `json:"reason,omitempty"`
	Promoted   int    `json:"promoted,omitempty"`
}
