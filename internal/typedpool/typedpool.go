// Package typedpool wraps sync.Pool with a typed api.
package typedpool

import "sync"

type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New returns a pool of *T values. If reset is not nil, it is called on
// every value handed back by Put.
func New[T any](reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

func (p *Pool[T]) Put(value *T) {
	if p.reset != nil {
		p.reset(value)
	}

	p.pool.Put(value)
}

// Clear resets a slice to zero length while keeping its capacity.
func Clear[E any](value *[]E) {
	*value = (*value)[:0]
}
