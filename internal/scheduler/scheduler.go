package scheduler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RewardReels_Go/internal/logger"
	"github.com/osse101/RewardReels_Go/internal/worker"
)

// LogMsgTickSkipped is logged when a tick fires while the pool queue is full
const LogMsgTickSkipped = "Scheduled job skipped, worker queue full"

// ErrNonPositiveInterval is returned when a job is scheduled with a zero or negative period
var ErrNonPositiveInterval = errors.New("schedule interval must be positive")

// Scheduler enqueues jobs on fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval from now.
// A tick that finds the queue full is skipped rather than blocking later ticks.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) error {
	if interval <= 0 {
		return fmt.Errorf("%s (%s): %w", name, interval, ErrNonPositiveInterval)
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.Info(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
	return nil
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
