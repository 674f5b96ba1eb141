package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolExecutesTasks(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	done := make(chan struct{}, 1)
	err := pool.AddTask(context.Background(), func() error {
		done <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was never executed")
	}
}

func TestWorkerPoolAddTaskContextCancelled(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPoolTryAddTask(t *testing.T) {
	// Zero capacity and no workers: every enqueue attempt must be refused.
	pool := NewWorkerPool(0)
	defer pool.Close()

	ok := pool.TryAddTask(func() error { return nil })
	assert.False(t, ok)
}

func TestWorkerPoolSurvivesFailuresAndPanics(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	require.True(t, pool.TryAddTask(func() error { return errors.New("task failed") }))
	require.True(t, pool.TryAddTask(func() error { panic("task panicked") }))

	done := make(chan struct{}, 1)
	require.True(t, pool.TryAddTask(func() error {
		done <- struct{}{}
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive the failing tasks")
	}
}
