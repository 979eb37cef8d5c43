package mocks

import (
	"context"

	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockQuizResultRepository is a mock implementation of repository.QuizResultRepository
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) Insert(ctx context.Context, result models.QuizResult) (int64, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizResultRepository) GetBySession(ctx context.Context, sessionID string) (*models.QuizResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.QuizResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResult), args.Error(1)
}
