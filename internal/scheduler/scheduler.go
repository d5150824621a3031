// Package scheduler runs recurring jobs on fixed intervals. The shop uses
// it for the periodic price drift tick; stopping the scheduler is the
// session teardown that silences the timer.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/duskfall/trader/internal/logger"
)

// Job is a unit of recurring work
type Job func(ctx context.Context)

// Scheduler manages scheduled jobs
type Scheduler struct {
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run
// happens one full interval after scheduling, not immediately.
func (s *Scheduler) Schedule(interval time.Duration, job Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
				job(ctx)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for in-flight runs to finish.
// Safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
