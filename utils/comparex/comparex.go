// File: comparex.go
// Title: Comparator Builders
// Description: Implements comparator construction helpers: natural and
//              reversed ordering, key-extraction based comparison,
//              explicit priority-list ordering with a configurable
//              fallback for absent keys, case-insensitive string
//              comparison, and tie-break chaining. Comparators follow the
//              cmp.Compare convention and plug directly into
//              slices.SortFunc.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with comparator builders

package comparex

import (
	"cmp"
	"strings"
)

// Comparator orders two values: negative when a sorts before b, zero when
// they are equivalent, positive when a sorts after b
type Comparator[T any] func(a, b T) int

// Natural returns the ordering of cmp.Compare
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts a comparator. A nil comparator yields a comparator that
// treats all values as equivalent.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return func(a, b T) int { return 0 }
	}
	return func(a, b T) int { return -c(a, b) }
}

// ByKey orders values by a key extracted from them. A nil extractor
// treats all values as equivalent.
func ByKey[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	if key == nil {
		return func(a, b T) int { return 0 }
	}
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ByKeyWith orders values by an extracted key compared with an explicit
// key comparator
func ByKeyWith[T, K any](key func(T) K, keyCmp Comparator[K]) Comparator[T] {
	if key == nil || keyCmp == nil {
		return func(a, b T) int { return 0 }
	}
	return func(a, b T) int { return keyCmp(key(a), key(b)) }
}

// CaseInsensitive orders strings ignoring ASCII and Unicode simple case
// differences, falling back to case-sensitive comparison for strings that
// are equal under folding so the ordering stays total and deterministic
func CaseInsensitive() Comparator[string] {
	return func(a, b string) int {
		if r := strings.Compare(strings.ToLower(a), strings.ToLower(b)); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// Chain combines comparators into one that applies each in turn until one
// breaks the tie. Nil entries are skipped; an empty chain treats all
// values as equivalent.
func Chain[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range comparators {
			if c == nil {
				continue
			}
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
