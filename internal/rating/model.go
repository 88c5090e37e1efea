package rating

import "time"

// rating an order rewards the author with a fixed bonus
const (
	BonusPoints = 3
	BonusCoins  = 3
)

type Rating struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// View is a rating joined with its author's name.
type View struct {
	RaterName string    `json:"rater_name"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest payload to rate an order.
// swagger:model SubmitRequest
type SubmitRequest struct {
	UserID  int64  `json:"user_id" example:"1"`
	Score   int    `json:"score"   example:"5"`
	Comment string `json:"comment" example:"great"`
}
