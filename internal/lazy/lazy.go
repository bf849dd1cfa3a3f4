// Package lazy provides a memoization cell for values derived from
// immutable data.
package lazy

import "sync/atomic"

// Value caches the result of a pure function. The first Get computes it;
// later calls return the published result. Concurrent first calls may
// each compute the value, and one of the results wins; since the function
// is pure, every caller observes an equal value.
//
// The zero Value is not usable; create one with New.
type Value[T any] struct {
	fn  func() T
	ptr atomic.Pointer[T]
}

// New returns a cell that computes its value with fn on first use.
func New[T any](fn func() T) *Value[T] {
	return &Value[T]{fn: fn}
}

// Get returns the cached value, computing it if necessary.
func (v *Value[T]) Get() T {
	if p := v.ptr.Load(); p != nil {
		return *p
	}
	x := v.fn()
	if v.ptr.CompareAndSwap(nil, &x) {
		return x
	}
	return *v.ptr.Load()
}

// Done reports whether the value has been materialized.
func (v *Value[T]) Done() bool {
	return v.ptr.Load() != nil
}
