// File: set.go
// Title: Lazy Set Wrapper
// Description: Implements a set of comparable items on top of the lazy
//              map wrapper, deferring creation of the backing store until
//              the first stateful operation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with lazy set

package lazyx

// Set is a lazily-initialized set of comparable items. The zero value is
// ready to use and starts empty. Not safe for concurrent mutation.
type Set[T comparable] struct {
	backing Map[T, struct{}]
}

// NewSet creates a lazy set whose backing store starts empty
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{}
}

// NewSetWith creates a lazy set whose initial items are produced by the
// supplier on first use
func NewSetWith[T comparable](supplier func() []T) *Set[T] {
	return &Set[T]{backing: Map[T, struct{}]{supplier: func() map[T]struct{} {
		items := supplier()
		m := make(map[T]struct{}, len(items))
		for _, item := range items {
			m[item] = struct{}{}
		}
		return m
	}}}
}

// IsMaterialized reports whether the backing store exists yet
func (s *Set[T]) IsMaterialized() bool {
	return s.backing.IsMaterialized()
}

// Materialize forces creation of the backing store
func (s *Set[T]) Materialize() {
	s.backing.Materialize()
}

// Add inserts an item; inserting an existing item is a no-op
func (s *Set[T]) Add(item T) {
	s.backing.Put(item, struct{}{})
}

// AddAll inserts every item of items. A nil slice is a no-op, matching
// ranging over a nil slice.
func (s *Set[T]) AddAll(items []T) {
	for _, item := range items {
		s.backing.Put(item, struct{}{})
	}
}

// Contains reports membership without materializing an untouched set
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.backing.Get(item)
	return ok
}

// Remove deletes an item; removing from an untouched set is a no-op
func (s *Set[T]) Remove(item T) {
	s.backing.Delete(item)
}

// Len returns the number of items
func (s *Set[T]) Len() int {
	return s.backing.Len()
}

// Items returns the items in unspecified order
func (s *Set[T]) Items() []T {
	return s.backing.Keys()
}
