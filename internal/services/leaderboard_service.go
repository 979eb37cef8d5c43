package services

import (
	"context"
	"sync"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

// LeaderboardService ranks finished sessions
type LeaderboardService interface {
	Top(ctx context.Context) ([]quiz.RankedEntry, error)
	Record(ctx context.Context, name string, profileID *int64, score int) ([]quiz.RankedEntry, error)
}

// mu serializes Record within this process so concurrent finishes see
// each other's entries. Separate processes sharing a database can still
// interleave.
type leaderboardService struct {
	repo repository.LeaderboardRepository
	size int
	mu   sync.Mutex
}

// NewLeaderboardService creates a LeaderboardService keeping size entries.
func NewLeaderboardService(repo repository.LeaderboardRepository, size int) LeaderboardService {
	if size <= 0 {
		size = quiz.DefaultLeaderboardSize
	}
	return &leaderboardService{repo: repo, size: size}
}

func (s *leaderboardService) Top(ctx context.Context) ([]quiz.RankedEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading leaderboard: size=%d", s.size)

	entries, err := s.repo.Top(ctx, s.size)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}

	board := make([]quiz.RankedEntry, len(entries))
	for i, e := range entries {
		board[i] = quiz.RankedEntry{Rank: i + 1, Name: e.Name, Score: e.Score}
	}
	return board, nil
}

// Record stores the score and returns the board as it looks with the new
// entry ranked in. Entries that fall off the board stay in storage.
func (s *leaderboardService) Record(ctx context.Context, name string, profileID *int64, score int) ([]quiz.RankedEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording leaderboard entry: name=%s, score=%d", name, score)

	if name == "" {
		name = models.AnonymousPlayerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.Top(ctx)
	if err != nil {
		return nil, err
	}
	ranked := quiz.InsertRanked(board, name, score, s.size)

	id, err := s.repo.Insert(ctx, models.LeaderboardEntry{
		Name:      name,
		ProfileID: profileID,
		Score:     score,
	})
	if err != nil {
		log.Error("failed to insert leaderboard entry: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("leaderboard entry stored: id=%d, name=%s, score=%d", id, name, score)

	return ranked, nil
}
