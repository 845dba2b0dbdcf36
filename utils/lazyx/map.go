// File: map.go
// Title: Lazy Map Wrapper
// Description: Implements a map wrapper that defers creation of the
//              backing map until the first stateful operation. Apart from
//              the deferred construction the wrapper behaves exactly like
//              the builtin map it wraps, including the nil-tolerance of
//              bulk arguments and the absence of internal locking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with lazy map

package lazyx

// Map is a lazily-initialized map. The zero value is ready to use with an
// empty backing map; NewMapWith defers to a supplier for the initial
// contents instead. Like the builtin map, a Map is not safe for
// concurrent mutation.
type Map[K comparable, V any] struct {
	supplier func() map[K]V
	backing  map[K]V
	ready    bool
}

// NewMap creates a lazy map whose backing store starts empty
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewMapWith creates a lazy map whose backing store is produced by the
// supplier on first use. A nil result from the supplier materializes as
// an empty map.
func NewMapWith[K comparable, V any](supplier func() map[K]V) *Map[K, V] {
	return &Map[K, V]{supplier: supplier}
}

// ensure creates the backing map on first stateful use
func (m *Map[K, V]) ensure() {
	if m.ready {
		return
	}
	if m.supplier != nil {
		m.backing = m.supplier()
		m.supplier = nil
	}
	if m.backing == nil {
		m.backing = make(map[K]V)
	}
	m.ready = true
}

// IsMaterialized reports whether the backing map exists yet
func (m *Map[K, V]) IsMaterialized() bool {
	return m.ready
}

// Materialize forces creation of the backing map
func (m *Map[K, V]) Materialize() {
	m.ensure()
}

// Get looks up a key; reading does not materialize an untouched map
func (m *Map[K, V]) Get(key K) (V, bool) {
	if !m.ready && m.supplier == nil {
		var zero V
		return zero, false
	}
	m.ensure()
	v, ok := m.backing[key]
	return v, ok
}

// Put stores a key-value pair
func (m *Map[K, V]) Put(key K, value V) {
	m.ensure()
	m.backing[key] = value
}

// PutAll copies all entries of other into the map. A nil argument is a
// no-op, exactly like ranging over a nil map.
func (m *Map[K, V]) PutAll(other map[K]V) {
	if len(other) == 0 {
		return
	}
	m.ensure()
	for k, v := range other {
		m.backing[k] = v
	}
}

// Delete removes a key; deleting from an untouched map is a no-op
func (m *Map[K, V]) Delete(key K) {
	if !m.ready && m.supplier == nil {
		return
	}
	m.ensure()
	delete(m.backing, key)
}

// Len returns the number of entries without materializing an empty map
func (m *Map[K, V]) Len() int {
	if !m.ready && m.supplier == nil {
		return 0
	}
	m.ensure()
	return len(m.backing)
}

// Keys returns the keys in unspecified order
func (m *Map[K, V]) Keys() []K {
	if !m.ready && m.supplier == nil {
		return nil
	}
	m.ensure()
	keys := make([]K, 0, len(m.backing))
	for k := range m.backing {
		keys = append(keys, k)
	}
	return keys
}

// ForEach calls fn for every entry in unspecified order
func (m *Map[K, V]) ForEach(fn func(key K, value V)) {
	if fn == nil {
		return
	}
	if !m.ready && m.supplier == nil {
		return
	}
	m.ensure()
	for k, v := range m.backing {
		fn(k, v)
	}
}

// Clear removes all entries, keeping the map materialized
func (m *Map[K, V]) Clear() {
	m.ensure()
	clear(m.backing)
}
