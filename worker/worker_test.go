package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlockingPool_RunsEveryJob(t *testing.T) {
	jobs := make(chan int, 10)
	for i := 1; i <= 10; i++ {
		jobs <- i
	}
	close(jobs)

	var sum atomic.Int64
	BlockingPool(context.Background(), 3, jobs, func(_ context.Context, n int) {
		sum.Add(int64(n))
	})

	assert.Equal(t, int64(55), sum.Load())
}

func TestBlockingPool_SurvivesPanickingJob(t *testing.T) {
	jobs := make(chan int, 3)
	jobs <- 1
	jobs <- 2
	jobs <- 3
	close(jobs)

	var done atomic.Int64
	BlockingPool(context.Background(), 1, jobs, func(_ context.Context, n int) {
		if n == 2 {
			panic("boom")
		}
		done.Add(1)
	})

	assert.Equal(t, int64(2), done.Load())
}

func TestBlockingPool_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	jobs := make(chan int) // never closed

	finished := make(chan struct{})
	go func() {
		BlockingPool(ctx, 2, jobs, func(context.Context, int) {})
		close(finished)
	}()

	cancel()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not stop after cancel")
	}
}

func TestBlockingPool_NonPositiveSizeUsesOneWorker(t *testing.T) {
	jobs := make(chan int, 2)
	jobs <- 1
	jobs <- 1
	close(jobs)

	var count atomic.Int64
	BlockingPool(context.Background(), 0, jobs, func(_ context.Context, n int) {
		count.Add(int64(n))
	})
	assert.Equal(t, int64(2), count.Load())
}
