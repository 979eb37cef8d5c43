package jobs

import (
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/repository"
	"github.com/dhanush7123/sanskrit-spark/internal/worker"
)

// WorkerQueue implements ResultQueue on a worker pool
type WorkerQueue struct {
	pool     *worker.Pool
	results  repository.QuizResultRepository
	profiles repository.ProfileRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, results repository.QuizResultRepository, profiles repository.ProfileRepository) ResultQueue {
	return &WorkerQueue{
		pool:     pool,
		results:  results,
		profiles: profiles,
	}
}

func (q *WorkerQueue) EnqueueResult(result models.QuizResult) error {
	return q.pool.Submit(&worker.RecordResultJob{
		Results:  q.results,
		Profiles: q.profiles,
		Result:   result,
	})
}
