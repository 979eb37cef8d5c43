package api

import (
	"context"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	DB                 Pinger
	QuizService        services.QuizService
	LeaderboardService services.LeaderboardService
	ProfileService     services.ProfileService
	OracleService      services.OracleService

	// ServerClock is true when a services.Clock ticks sessions. Otherwise
	// clients drive the countdown through the tick endpoint.
	ServerClock    bool
	CookieSecure   bool
	StreamInterval time.Duration
}
