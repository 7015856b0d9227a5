// Package promise provides completion handles that are resolved exactly once.
package promise

import "sync"

// Unit is the result of operations that complete without a payload.
type Unit struct{}

// Promise delivers one result to its callback. Only the first Resolve call has an effect;
// later calls are ignored. A nil *Promise discards results.
type Promise[T any] struct {
	once sync.Once
	fn   func(T, error)
}

func New[T any](fn func(T, error)) *Promise[T] {
	return &Promise[T]{fn: fn}
}

func (p *Promise[T]) Resolve(v T, err error) {
	if p == nil {
		return
	}
	p.once.Do(func() {
		if p.fn != nil {
			p.fn(v, err)
		}
	})
}

func (p *Promise[T]) Set(v T) {
	p.Resolve(v, nil)
}

func (p *Promise[T]) SetError(err error) {
	var zero T
	p.Resolve(zero, err)
}

// Result is a resolved value as delivered by Chan.
type Result[T any] struct {
	Value T
	Err   error
}

// Chan returns a promise whose result is sent to the returned channel. The channel is
// buffered so resolving never blocks.
func Chan[T any]() (*Promise[T], <-chan Result[T]) {
	ch := make(chan Result[T], 1)
	return New(func(v T, err error) {
		ch <- Result[T]{Value: v, Err: err}
	}), ch
}
