package product

import "time"

// listing a product rewards the donor with a fixed bonus
const (
	ListingBonusPoints = 10
	ListingBonusCoins  = 10
)

type Product struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Condition   string `json:"condition,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price     string    `json:"price"`
	Size      string    `json:"size,omitempty"`
	Brand     string    `json:"brand,omitempty"`
	Color     string    `json:"color,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	UserID      int64  `json:"user_id"     example:"1"`
	Name        string `json:"name"        example:"Winter Jacket"`
	Description string `json:"description" example:"Barely worn"`
	Category    string `json:"category"    example:"clothing"`
	Condition   string `json:"condition"   example:"used-good"`
	Price       string `json:"price"       example:"59.90"`
	Size        string `json:"size"        example:"M"`
	Brand       string `json:"brand"`
	Color       string `json:"color"`
	ImageURL    string `json:"image_url"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Q      string    `json:"q,omitempty"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Items  []Product `json:"items"`
}
