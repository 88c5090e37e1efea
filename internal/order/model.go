package order

import "time"

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Total     string    `json:"total"` // NUMERIC -> string
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// Summary is one row of a user's order history, including whether the
// user has already rated that order. Reflects committed ratings only.
type Summary struct {
	ID           int64     `json:"id"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	AlreadyRated bool      `json:"already_rated"`
}

// LineView is an order line joined with its product name for display.
type LineView struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}
