package repository

import (
	"context"
	"errors"

	"github.com/dhanush7123/sanskrit-spark/internal/models"
)

// ErrNotFound is returned when a lookup by key matches no row.
var ErrNotFound = errors.New("not found")

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	Upsert(ctx context.Context, name string) (*models.Profile, error)
	AddKarma(ctx context.Context, id int64, points int) error
}

// LeaderboardRepository stores every submitted score. Top ranks them by
// score, ties in insertion order.
type LeaderboardRepository interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	Insert(ctx context.Context, entry models.LeaderboardEntry) (int64, error)
}

// QuizResultRepository handles completed quiz sessions
type QuizResultRepository interface {
	Insert(ctx context.Context, result models.QuizResult) (int64, error)
	GetBySession(ctx context.Context, sessionID string) (*models.QuizResult, error)
	List(ctx context.Context, filter models.ResultFilter) ([]models.QuizResult, error)
}
