package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
)

// RecordResultJob persists a finished quiz session and credits the
// player's karma with the session score.
type RecordResultJob struct {
	Results  repository.QuizResultRepository
	Profiles repository.ProfileRepository
	Result   models.QuizResult
}

func (j *RecordResultJob) Name() string { return "record_quiz_result" }

func (j *RecordResultJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"session_id": j.Result.SessionID,
		"score":      j.Result.Score,
	})

	id, err := j.Results.Insert(ctx, j.Result)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	log.Info("quiz result stored: id=%d", id)

	if j.Result.ProfileID == nil || j.Result.Score == 0 {
		return nil
	}
	if err := j.Profiles.AddKarma(ctx, *j.Result.ProfileID, j.Result.Score); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("profile %d no longer exists, karma not credited", *j.Result.ProfileID)
			return nil
		}
		return fmt.Errorf("credit karma: %w", err)
	}
	log.Debug("credited %d karma to profile %d", j.Result.Score, *j.Result.ProfileID)
	return nil
}
