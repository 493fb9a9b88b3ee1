package parallel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var completed int64
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if err := pool.Submit(ctx, func() {
			atomic.AddInt64(&completed, 1)
		}); err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
	}

	pool.Shutdown()

	if got := atomic.LoadInt64(&completed); got != 50 {
		t.Errorf("Expected 50 completed tasks, got %d", got)
	}
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()

	if pool.taskChan == nil {
		t.Error("Expected pool to be initialized with a default worker count")
	}
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	if err != ErrPoolShutdown {
		t.Errorf("Expected ErrPoolShutdown, got %v", err)
	}
}

func TestWorkerPoolContextCancellation(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Shutdown()

	// Fill the single worker with a slow task and overflow the buffered channel.
	block := make(chan struct{})
	_ = pool.Submit(context.Background(), func() {
		<-block
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// Saturate the buffer so the next Submit would block, then let the
	// context deadline trigger the cancellation path.
	for i := 0; i < cap(pool.taskChan); i++ {
		_ = pool.Submit(context.Background(), func() { <-block })
	}

	err := pool.Submit(ctx, func() {})
	close(block)

	if err != context.DeadlineExceeded {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}
}
