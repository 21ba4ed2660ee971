// Package pool provides a bounded free list for reusable objects.
package pool

// Resettable is implemented by objects that can be cleared before reuse.
type Resettable interface {
	Reset()
}

// Pool holds up to capacity idle objects of type T.
type Pool[T Resettable] struct {
	items   chan T
	newItem func() T
}

// New creates a Pool that builds objects with newItem when no idle one is available.
func New[T Resettable](capacity int, newItem func() T) *Pool[T] {
	return &Pool[T]{
		items:   make(chan T, capacity),
		newItem: newItem,
	}
}

// Get returns an idle object, or a new one when the pool is empty.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.items:
		return item
	default:
		return p.newItem()
	}
}

// Put resets item and keeps it for reuse; it is dropped when the pool is full.
func (p *Pool[T]) Put(item T) {
	item.Reset()

	select {
	case p.items <- item:
	default:
	}
}

// Len reports the number of idle objects.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
