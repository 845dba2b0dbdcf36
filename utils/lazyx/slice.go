// File: slice.go
// Title: Lazy Slice Wrapper
// Description: Implements a slice wrapper that defers creation of the
//              backing slice until the first stateful operation, with the
//              usual slice semantics otherwise (index panics included).
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with lazy slice

package lazyx

// Slice is a lazily-initialized slice. The zero value is ready to use and
// starts empty; NewSliceWith defers to a supplier for the initial
// contents. Not safe for concurrent mutation, like a plain slice.
type Slice[T any] struct {
	supplier func() []T
	backing  []T
	ready    bool
}

// NewSlice creates a lazy slice whose backing store starts empty
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// NewSliceWith creates a lazy slice whose backing store is produced by
// the supplier on first use
func NewSliceWith[T any](supplier func() []T) *Slice[T] {
	return &Slice[T]{supplier: supplier}
}

func (s *Slice[T]) ensure() {
	if s.ready {
		return
	}
	if s.supplier != nil {
		s.backing = s.supplier()
		s.supplier = nil
	}
	s.ready = true
}

// IsMaterialized reports whether the backing slice exists yet
func (s *Slice[T]) IsMaterialized() bool {
	return s.ready
}

// Materialize forces creation of the backing slice
func (s *Slice[T]) Materialize() {
	s.ensure()
}

// Append adds items to the end. A call with no items still materializes,
// matching append's treatment of its arguments.
func (s *Slice[T]) Append(items ...T) {
	s.ensure()
	s.backing = append(s.backing, items...)
}

// Get returns the item at index i, panicking on out-of-range exactly like
// a slice index expression
func (s *Slice[T]) Get(i int) T {
	s.ensure()
	return s.backing[i]
}

// Set replaces the item at index i, panicking on out-of-range
func (s *Slice[T]) Set(i int, item T) {
	s.ensure()
	s.backing[i] = item
}

// Len returns the number of items without materializing an empty slice
func (s *Slice[T]) Len() int {
	if !s.ready && s.supplier == nil {
		return 0
	}
	s.ensure()
	return len(s.backing)
}

// Items returns a copy of the backing slice
func (s *Slice[T]) Items() []T {
	if !s.ready && s.supplier == nil {
		return nil
	}
	s.ensure()
	out := make([]T, len(s.backing))
	copy(out, s.backing)
	return out
}

// Clear removes all items, keeping the slice materialized
func (s *Slice[T]) Clear() {
	s.ensure()
	s.backing = s.backing[:0]
}
