package core

import (
	"slices"
	"sync"
)

// Observable holds a value and notifies listeners when it changes.
// It is safe for concurrent use.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equal     func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable. Without an equality function every
// Set notifies.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that skips notification
// when equal(old, new) is true.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and notifies listeners outside the lock.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, v) {
		o.mu.Unlock()
		return
	}
	o.value = v
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.listeners[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// AddListener registers fn and returns a function that removes it.
// Listeners run in registration order.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// Watch re-renders through u whenever obs changes and returns the
// unsubscribe function. Update errors are already reported by the runtime.
func Watch[T any](obs *Observable[T], u Updater) func() {
	return obs.AddListener(func(T) {
		_ = u.Update()
	})
}
