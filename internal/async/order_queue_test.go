package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu     sync.Mutex
	orders []uuid.UUID
}

func (p *recordingProcessor) ProcessOrder(_ context.Context, orderID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, orderID)
	return nil
}

func (p *recordingProcessor) seen() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.orders...)
}

func TestOrderQueueProcessesAllJobs(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewOrderQueue(proc, slog.Default(), WithWorkers(3), WithQueueSize(16))

	want := map[uuid.UUID]bool{}
	for i := 0; i < 10; i++ {
		id := uuid.New()
		want[id] = true
		require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: id, SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	got := proc.seen()
	require.Len(t, got, 10)
	for _, id := range got {
		assert.True(t, want[id], "unexpected order %s", id)
	}
}

func TestOrderQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &recordingProcessor{}
	q := NewOrderQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: uuid.New()}))
	assert.Empty(t, proc.seen())
}
