package jobs

import "github.com/dhanush7123/sanskrit-spark/internal/models"

// ResultQueue accepts finished quiz results for background persistence.
type ResultQueue interface {
	EnqueueResult(result models.QuizResult) error
}
