package services_test

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
	"github.com/dhanush7123/sanskrit-spark/internal/services"
	"github.com/dhanush7123/sanskrit-spark/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_LoginTrimsName(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Upsert", mock.Anything, "Mira").Return(&models.Profile{ID: 1, Name: "Mira"}, nil)

	svc := services.NewProfileService(profiles, new(mocks.MockQuizResultRepository))
	p, err := svc.Login(context.Background(), "  Mira ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestProfileService_LoginValidation(t *testing.T) {
	svc := services.NewProfileService(new(mocks.MockProfileRepository), new(mocks.MockQuizResultRepository))

	for _, name := range []string{"", "   ", strings.Repeat("a", 33), "seeker"} {
		_, err := svc.Login(context.Background(), name)
		require.Error(t, err, name)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}
}

func TestProfileService_GetNotFound(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)

	_, err := services.NewProfileService(profiles, nil).Get(context.Background(), 9)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestProfileService_ResultsClampsLimit(t *testing.T) {
	results := new(mocks.MockQuizResultRepository)
	results.On("List", mock.Anything, models.ResultFilter{ProfileID: 2, Limit: 20}).Return([]models.QuizResult{{ID: 1}}, nil).Once()
	results.On("List", mock.Anything, models.ResultFilter{ProfileID: 2, Limit: 100}).Return([]models.QuizResult{}, nil).Once()

	svc := services.NewProfileService(new(mocks.MockProfileRepository), results)
	got, err := svc.Results(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Results(context.Background(), 2, 5000)
	require.NoError(t, err)
	results.AssertExpectations(t)
}

func TestProfileService_ResultChecksOwner(t *testing.T) {
	owner := int64(2)
	other := int64(7)
	results := new(mocks.MockQuizResultRepository)
	results.On("GetBySession", mock.Anything, "mine").Return(&models.QuizResult{
		SessionID: "mine",
		ProfileID: &owner,
		Answers:   []models.QuizAnswer{{QuestionIndex: 0, QuestionID: 1, Correct: true, Points: 20}},
	}, nil)
	results.On("GetBySession", mock.Anything, "theirs").Return(&models.QuizResult{SessionID: "theirs", ProfileID: &other}, nil)
	results.On("GetBySession", mock.Anything, "anonymous").Return(&models.QuizResult{SessionID: "anonymous"}, nil)
	results.On("GetBySession", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := services.NewProfileService(new(mocks.MockProfileRepository), results)

	got, err := svc.Result(context.Background(), owner, "mine")
	require.NoError(t, err)
	assert.Len(t, got.Answers, 1)

	for _, playID := range []string{"theirs", "anonymous", "missing"} {
		_, err := svc.Result(context.Background(), owner, playID)
		appErr, ok := apperrors.As(err)
		require.True(t, ok, playID)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code, playID)
	}
}
