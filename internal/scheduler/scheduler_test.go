package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardReels_Go/internal/testing/leaktest"
	"github.com/osse101/RewardReels_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	require.NoError(t, sched.Schedule("tick", 10*time.Millisecond, job))

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	require.NoError(t, sched.Schedule("tick", 5*time.Millisecond, job))

	<-job.Done
	sched.Stop()
	sched.Stop()
	pool.Stop()

	after := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.RunCount.Load())

	checker.Check(0)
}

func TestScheduler_RejectsNonPositiveInterval(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()
	sched := New(pool)

	for _, interval := range []time.Duration{0, -5 * time.Second} {
		err := sched.Schedule("tick", interval, &MockJob{Done: make(chan struct{}, 1)})
		assert.ErrorIs(t, err, ErrNonPositiveInterval)
	}

	sched.Stop()
	pool.Stop()
	checker.Check(0)
}
