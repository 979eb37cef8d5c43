package models

import "time"

type LeaderboardEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ProfileID *int64    `json:"profile_id,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
