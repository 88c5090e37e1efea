package user

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	Points       int       `json:"points"`
	Coins        int       `json:"coins"`
	CreatedAt    time.Time `json:"created_at"`
}

// RankEntry is one row of the points leaderboard.
// swagger:model RankEntry
type RankEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
