package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/services"
	"github.com/dhanush7123/sanskrit-spark/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOracleService_Lookup(t *testing.T) {
	client := new(mocks.MockOracleClient)
	client.On("Explain", mock.Anything, "mantra").Return("मन्त्र", nil)

	got, err := services.NewOracleService(client).Lookup(context.Background(), " mantra ")
	require.NoError(t, err)
	assert.Equal(t, "मन्त्र", got)
}

func TestOracleService_RejectsBadWords(t *testing.T) {
	client := new(mocks.MockOracleClient)
	svc := services.NewOracleService(client)

	_, err := svc.Lookup(context.Background(), "")
	assert.Error(t, err)
	_, err = svc.Lookup(context.Background(), strings.Repeat("ॐ", 65))
	assert.Error(t, err)

	client.AssertNotCalled(t, "Explain", mock.Anything, mock.Anything)
}

func TestOracleService_ClientFailure(t *testing.T) {
	client := new(mocks.MockOracleClient)
	client.On("Explain", mock.Anything, "yoga").Return("", errors.New("oracle status 429"))

	_, err := services.NewOracleService(client).Lookup(context.Background(), "yoga")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, services.OracleUnavailableMessage, appErr.Message)
	assert.Equal(t, apperrors.ErrCodeUnavailable, appErr.Code)
}
