// Package pool provides object pooling for eargs evaluation state.
// Used to recycle the per-call schema and input scratch structures and
// keep repeated evaluations off the allocator.
package pool

import "sync"

// Pool is a generic, type-safe object pool with an optional reset
// function applied before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool backed by the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose reset function runs on every
// object handed out by Get, so callers always see a clean state.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}
