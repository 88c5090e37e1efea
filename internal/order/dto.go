package order

// CheckoutItem payload de ítem.
// swagger:model CheckoutItem
type CheckoutItem struct {
	ProductID int64  `json:"product_id" example:"7"`
	Quantity  int    `json:"quantity"   example:"1"`
	UnitPrice string `json:"unit_price" example:"59.90"`
}

// CheckoutRequest payload to finalize an order. Reward amounts are
// computed by the client; the total is re-validated server-side.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	UserID           int64          `json:"user_id"            example:"1"`
	FinalValue       string         `json:"final_value"        example:"59.90"`
	Items            []CheckoutItem `json:"items"`
	CoinsSpent       int            `json:"coins_spent"        example:"0"`
	PointsEarned     int            `json:"points_earned"      example:"5"`
	FinalCoinBalance int            `json:"final_coin_balance" example:"15"`
}
