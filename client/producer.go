package client

import (
	"context"
	"sync"
)

// Producer is a lazy, single-shot source for the outcome of one API call.
// Nothing goes over the wire until the first Await; every later Await
// returns that same outcome. The context given to the first Await governs
// cancellation of the request.
type Producer[T any] struct {
	fetch func(ctx context.Context) (T, error)
	once  sync.Once
	value T
	err   error
}

// NewProducer wraps fetch; fetch runs at most once, on the first Await.
func NewProducer[T any](fetch func(ctx context.Context) (T, error)) *Producer[T] {
	return &Producer[T]{fetch: fetch}
}

// failedProducer resolves to err without doing any work.
func failedProducer[T any](err error) *Producer[T] {
	return NewProducer(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Await fires the call on first use and blocks until it resolves.
func (p *Producer[T]) Await(ctx context.Context) (T, error) {
	p.once.Do(func() {
		p.value, p.err = p.fetch(ctx)
		p.fetch = nil
	})
	return p.value, p.err
}
