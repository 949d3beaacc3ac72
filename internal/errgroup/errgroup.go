// Package errgroup provides synchronization, error propagation and context
// cancellation for groups of goroutines, with worker panics recovered and
// reported as errors instead of crashing the process.
package errgroup

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Group is a collection of goroutines working on subtasks of a common task.
type Group struct {
	cancel context.CancelFunc

	wg sync.WaitGroup

	errOnce sync.Once
	err     error
}

// WithContext returns a new Group and an associated Context derived from
// ctx. The context is canceled the first time a subtask fails or panics,
// or when Wait returns.
func WithContext(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Group{cancel: cancel}, ctx
}

// Go calls the given function in a new goroutine. The first call to return
// a non-nil error or to panic cancels the group; its error will be
// returned by Wait.
func (g *Group) Go(f func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.report(errors.Errorf("panic in task: %v", r))
			}
		}()
		if err := f(); err != nil {
			g.report(err)
		}
	}()
}

// Wait blocks until all goroutines spawned with Go have returned, then
// returns the first error reported by any of them.
func (g *Group) Wait() error {
	g.wg.Wait()
	if g.cancel != nil {
		g.cancel()
	}
	return g.err
}

func (g *Group) report(err error) {
	g.errOnce.Do(func() {
		g.err = err
		if g.cancel != nil {
			g.cancel()
		}
	})
}
