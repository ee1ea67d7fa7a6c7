package app

import (
	"context"
	"sync"

	"go.trai.ch/kin/internal/core/domain"
)

// Loop runs submitted functions one at a time on a single goroutine.
// Every access to an App from concurrent code goes through it.
type Loop struct {
	jobs     chan job
	done     chan struct{}
	stopOnce sync.Once
}

type job struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// NewLoop creates a Loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		jobs: make(chan job),
		done: make(chan struct{}),
	}
}

// Run processes submitted functions in order until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return nil
		case j := <-l.jobs:
			j.result <- j.fn(j.ctx)
		}
	}
}

// Do runs fn on the loop and returns its error. It blocks until fn returned or
// ctx ended; a started fn always runs to completion.
func (l *Loop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	j := job{ctx: ctx, fn: fn, result: make(chan error, 1)}
	select {
	case l.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return domain.ErrLoopClosed
	}

	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Query runs fn on l and returns its value.
func Query[T any](ctx context.Context, l *Loop, fn func(ctx context.Context) (T, error)) (T, error) {
	values := make(chan T, 1)
	err := l.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		values <- v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return <-values, nil
}
