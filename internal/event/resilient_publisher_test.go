package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails while shouldFail returns true for the 1-based attempt number
type flakyBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (b *flakyBus) Publish(ctx context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	n := len(b.calls)
	b.mu.Unlock()

	if b.shouldFail != nil && b.shouldFail(n) {
		return errors.New("subscriber unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), Event{Type: SpinCompleted})
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.count())
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(n int) bool { return n == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), Event{Type: JackpotHit})

	assert.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 5*time.Millisecond)
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), Event{Type: AutoplayStopped, Payload: map[string]interface{}{"session_id": "s1"}})

	// initial attempt + 3 retries
	require.Eventually(t, func() bool { return bus.count() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, AutoplayStopped, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Contains(t, entry.LastError, "subscriber unavailable")
}

func TestResilientPublisher_QueueOverflowDeadLetters(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(int) bool { return true }}

	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no worker running: the queue fills and overflows
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), Event{Type: SpinCompleted})
	}

	assert.Len(t, rp.retryQueue, 2)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, splitLines(content), 3)
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(n int) bool { return n <= 2 }}

	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), Event{Type: SpinCompleted})
	rp.PublishWithRetry(context.Background(), Event{Type: SpinCompleted})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 4, bus.count(), "queued events are republished once on shutdown")
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func splitLines(b []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, c := range b {
		if c == '\n' {
			lines = append(lines, b[start:i])
			start = i + 1
		}
	}
	return lines
}
