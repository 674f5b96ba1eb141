package dispatch

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) bool
	Close()
}

type Task func() error

type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		wp.run(task)
	}
}

// run isolates one task: an error is logged, a panic is recovered, and
// neither can take the worker or the process down.
func (wp *WorkerPool) run(task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("Task panicked", zap.Any("panic", rec))
		}
	}()

	if err := task(); err != nil {
		zap.L().Error("Task execution failed", zap.Error(err))
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask enqueues without blocking; it reports false when the queue
// is full.
func (wp *WorkerPool) TryAddTask(task Task) bool {
	select {
	case wp.pool <- task:
		return true
	default:
		return false
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
