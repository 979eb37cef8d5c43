package mocks

import (
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockResultQueue is a mock implementation of jobs.ResultQueue
type MockResultQueue struct {
	mock.Mock
}

func (m *MockResultQueue) EnqueueResult(result models.QuizResult) error {
	args := m.Called(result)
	return args.Error(0)
}
