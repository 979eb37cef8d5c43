package mocks

import (
	"context"

	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockLeaderboardRepository is a mock implementation of repository.LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) Insert(ctx context.Context, entry models.LeaderboardEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}
