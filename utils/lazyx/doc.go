// File: doc.go
// Title: Package Documentation for lazyx
// Description: Package lazyx provides lazily-initialized values and
//              collection wrappers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package lazyx provides lazy values and lazy collection wrappers.
//
// Lazy[T] memoizes a supplier function; Map, Slice, and Set defer
// creation of their backing store until the first stateful operation and
// otherwise behave exactly like the builtin collection they wrap. Every
// type exposes IsMaterialized to query whether the backing store exists
// and Materialize to force its creation:
//
//	m := lazyx.NewMapWith(loadDefaults)
//	m.IsMaterialized() // false, loadDefaults not called yet
//	v, ok := m.Get("key") // materializes via loadDefaults
//
// Bulk operations deliberately keep the builtin collections' treatment of
// nil arguments (a nil map or slice argument behaves as empty) instead of
// raising the library's nil-argument error; the wrappers are drop-in
// replacements for the collections they defer.
//
// Lazy[T] is safe for concurrent use. The collection wrappers are not
// safe for concurrent mutation, exactly like the builtin map and slice.
package lazyx
