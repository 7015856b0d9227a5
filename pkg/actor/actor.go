// Package actor runs posted functions one at a time, in posting order.
package actor

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Actor is the sequential execution context of one client session.
// Post never blocks: the mailbox is unbounded.
type Actor struct {
	logger *zap.Logger

	mu      sync.Mutex
	mailbox []func()
	stopped bool
	wakeup  chan struct{}
}

func New(logger *zap.Logger) *Actor {
	return &Actor{
		logger: logger,
		wakeup: make(chan struct{}, 1),
	}
}

// Post schedules fn to run on the actor. It may be called from any goroutine, including
// from a function that is running on the actor. Post returns false and drops fn once Run
// has returned.
func (a *Actor) Post(fn func()) bool {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return false
	}
	a.mailbox = append(a.mailbox, fn)
	a.mu.Unlock()
	select {
	case a.wakeup <- struct{}{}:
	default:
	}
	return true
}

// Run executes posted functions until ctx is done. Functions accepted by Post before that
// are still executed before Run returns.
func (a *Actor) Run(ctx context.Context) {
	defer a.drain()
	for {
		for _, fn := range a.take() {
			a.exec(fn)
		}
		select {
		case <-ctx.Done():
			return
		case <-a.wakeup:
		}
	}
}

// drain stops accepting new functions and runs what is left in the mailbox.
func (a *Actor) drain() {
	a.mu.Lock()
	a.stopped = true
	rest := a.mailbox
	a.mailbox = nil
	a.mu.Unlock()
	if len(rest) > 0 {
		a.logger.Debug("draining actor mailbox", zap.Int("tasks", len(rest)))
	}
	for _, fn := range rest {
		a.exec(fn)
	}
}

func (a *Actor) take() []func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	batch := a.mailbox
	a.mailbox = nil
	return batch
}

func (a *Actor) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("actor task panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	fn()
}
