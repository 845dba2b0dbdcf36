// File: lazy.go
// Title: Memoized Lazy Value
// Description: Implements the generic Lazy[T] value that defers evaluation
//              of a supplier function until first access and caches the
//              result for the remaining lifetime. This is the building
//              block the lazy collection wrappers in this package are
//              based on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with Lazy value

package lazyx

import (
	"sync"
	"sync/atomic"
)

// Lazy defers evaluation of a supplier until the first call to Get and
// memoizes the result. The zero value is not usable; construct with
// NewLazy or Of. All methods are safe for concurrent use.
type Lazy[T any] struct {
	once     sync.Once
	supplier func() T
	value    T
	done     atomic.Bool
}

// NewLazy creates a Lazy value backed by the supplier. A nil supplier
// yields the zero value of T on first access.
func NewLazy[T any](supplier func() T) *Lazy[T] {
	return &Lazy[T]{supplier: supplier}
}

// Of creates an already-materialized Lazy holding value
func Of[T any](value T) *Lazy[T] {
	l := &Lazy[T]{value: value}
	l.once.Do(func() {})
	l.done.Store(true)
	return l
}

// Get returns the value, evaluating the supplier on first call
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		if l.supplier != nil {
			l.value = l.supplier()
			l.supplier = nil
		}
		l.done.Store(true)
	})
	return l.value
}

// IsMaterialized reports whether the supplier has already run
func (l *Lazy[T]) IsMaterialized() bool {
	return l.done.Load()
}

// Materialize forces evaluation without using the value
func (l *Lazy[T]) Materialize() {
	l.Get()
}
