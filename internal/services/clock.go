package services

import (
	"context"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
)

// Clock drives the per-question countdown of every live session from a
// single ticker and evicts idle sessions on the same loop.
type Clock struct {
	quiz     QuizService
	interval time.Duration
	idle     time.Duration
	ticking  bool
	log      *logger.Logger
}

// NewClock creates a clock firing every interval. Sessions idle for longer
// than idle are dropped. With ticking false the clock only evicts, leaving
// the countdown to clients.
func NewClock(quiz QuizService, interval, idle time.Duration, ticking bool) *Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return &Clock{
		quiz:     quiz,
		interval: interval,
		idle:     idle,
		ticking:  ticking,
		log:      logger.Default().WithPrefix("quiz-clock"),
	}
}

// Run blocks until ctx is cancelled.
func (c *Clock) Run(ctx context.Context) {
	c.log.Info("quiz clock started: interval=%v, idle_timeout=%v, ticking=%t", c.interval, c.idle, c.ticking)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	ctx = logger.NewContext(ctx, c.log)
	for {
		select {
		case <-ctx.Done():
			c.log.Info("quiz clock stopped")
			return
		case <-ticker.C:
			if c.ticking {
				if n := c.quiz.TickAll(ctx); n > 0 {
					c.log.Debug("tick timed out %d questions", n)
				}
			}
			if c.idle > 0 {
				c.quiz.Evict(ctx, c.idle)
			}
		}
	}
}
