package models

import "time"

// Profile is a player identity. Karma accumulates across quiz sessions.
type Profile struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	KarmaPoints int        `json:"karma_points"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSeenAt  *time.Time `json:"last_seen_at"`
}

// AnonymousPlayerName is used on the leaderboard when no profile is selected.
const AnonymousPlayerName = "Seeker"
