package jackpot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RewardReels_Go/internal/logger"
)

// TickJob accrues the pool by the wall time since its previous run.
// Skipped scheduler ticks are caught up on the next run.
type TickJob struct {
	acc  *Accumulator
	now  func() time.Time
	mu   sync.Mutex
	last time.Time
}

// NewTickJob creates a tick job starting from now
func NewTickJob(acc *Accumulator) *TickJob {
	return &TickJob{acc: acc, now: time.Now, last: time.Now()}
}

// Process implements worker.Job
func (j *TickJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	elapsed := now.Sub(j.last)
	if err := j.acc.Tick(ctx, elapsed); err != nil {
		return err
	}
	j.last = now
	return nil
}

// PersistJob saves a snapshot of the pool
type PersistJob struct {
	acc   *Accumulator
	store Store
}

// NewPersistJob creates a persist job
func NewPersistJob(acc *Accumulator, store Store) *PersistJob {
	return &PersistJob{acc: acc, store: store}
}

// Process implements worker.Job
func (j *PersistJob) Process(ctx context.Context) error {
	snap, err := j.acc.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := j.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSave, err)
	}
	logger.FromContext(ctx).Debug(LogMsgJackpotPersisted, "table_id", snap.TableID, "current", snap.Current)
	return nil
}
