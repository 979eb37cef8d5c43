package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs *int32
	err  error
}

func (j countingJob) Name() string { return "counting" }

func (j countingJob) Run(ctx context.Context) error {
	atomic.AddInt32(j.runs, 1)
	return j.err
}

func TestPool_RunsAllJobsBeforeStop(t *testing.T) {
	var runs int32
	p := worker.NewPool(3, 16)
	p.Start(context.Background())

	for i := 0; i < 10; i++ {
		var err error
		if i%3 == 0 {
			err = errors.New("boom")
		}
		require.NoError(t, p.Submit(countingJob{runs: &runs, err: err}))
	}
	p.Stop()

	assert.Equal(t, int32(10), atomic.LoadInt32(&runs), "failed jobs must not stop the pool")
}

func TestPool_SubmitAfterStop(t *testing.T) {
	var runs int32
	p := worker.NewPool(1, 1)
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	err := p.Submit(countingJob{runs: &runs})
	assert.ErrorIs(t, err, worker.ErrPoolStopped)
}

func TestPool_QueueFull(t *testing.T) {
	var runs int32
	p := worker.NewPool(1, 1)

	require.NoError(t, p.Submit(countingJob{runs: &runs}))
	assert.Equal(t, 1, p.QueueSize())
	assert.ErrorIs(t, p.Submit(countingJob{runs: &runs}), worker.ErrQueueFull)

	p.Start(context.Background())
	p.Stop()
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}
