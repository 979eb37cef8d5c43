package services

import (
	"context"
	stderrors "errors"
	"strings"
	"unicode/utf8"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

const (
	maxProfileNameLength = 32
	defaultResultsLimit  = 20
	maxResultsLimit      = 100
)

// ProfileService handles profile-related business logic
type ProfileService interface {
	Login(ctx context.Context, name string) (*models.Profile, error)
	Get(ctx context.Context, id int64) (*models.Profile, error)
	Results(ctx context.Context, profileID int64, limit int) ([]models.QuizResult, error)
	Result(ctx context.Context, profileID int64, playID string) (*models.QuizResult, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	resultRepo  repository.QuizResultRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, resultRepo repository.QuizResultRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, resultRepo: resultRepo}
}

// Login returns the profile with the given name, creating it on first use.
func (s *profileService) Login(ctx context.Context, name string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	name = strings.TrimSpace(name)
	log.Debug("logging in profile: name=%s", name)

	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProfileNameLength {
		return nil, errors.NewValidationError("name", "must be at most 32 characters")
	}
	if strings.EqualFold(name, models.AnonymousPlayerName) {
		return nil, errors.NewValidationError("name", "is reserved")
	}

	profile, err := s.profileRepo.Upsert(ctx, name)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) Get(ctx context.Context, id int64) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting profile: id=%d", id)

	profile, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("profile", id)
		}
		log.Error("failed to get profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return profile, nil
}

func (s *profileService) Results(ctx context.Context, profileID int64, limit int) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing results: profile_id=%d, limit=%d", profileID, limit)

	if limit <= 0 {
		limit = defaultResultsLimit
	}
	if limit > maxResultsLimit {
		limit = maxResultsLimit
	}

	results, err := s.resultRepo.List(ctx, models.ResultFilter{ProfileID: profileID, Limit: limit})
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return results, nil
}

// Result returns one stored play-through with its answers. Results of
// other profiles and anonymous results read as not found.
func (s *profileService) Result(ctx context.Context, profileID int64, playID string) (*models.QuizResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting result: profile_id=%d, play_id=%s", profileID, playID)

	result, err := s.resultRepo.GetBySession(ctx, playID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("quiz result", playID)
		}
		log.Error("failed to get result: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if result.ProfileID == nil || *result.ProfileID != profileID {
		return nil, errors.NewNotFoundError("quiz result", playID)
	}
	return result, nil
}
