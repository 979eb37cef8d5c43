package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOracleClient is a mock implementation of oracle.ClientInterface
type MockOracleClient struct {
	mock.Mock
}

func (m *MockOracleClient) Explain(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}
