// File: bylist.go
// Title: Priority-List Comparator
// Description: Implements ordering by an explicit priority list: values
//              appearing in the list sort by their list position, values
//              absent from the list sort after all listed values and among
//              themselves by a configurable fallback ordering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with priority-list ordering

package comparex

// ByList orders values by their position in the priority list. Values not
// in the list sort after every listed value; among themselves they are
// ordered by the fallback comparator, or treated as equivalent when
// fallback is nil. Duplicate list entries keep their first position.
func ByList[T comparable](priority []T, fallback Comparator[T]) Comparator[T] {
	rank := make(map[T]int, len(priority))
	for i, v := range priority {
		if _, seen := rank[v]; !seen {
			rank[v] = i
		}
	}
	return func(a, b T) int {
		ra, okA := rank[a]
		rb, okB := rank[b]
		switch {
		case okA && okB:
			switch {
			case ra < rb:
				return -1
			case ra > rb:
				return 1
			default:
				return 0
			}
		case okA:
			return -1
		case okB:
			return 1
		default:
			if fallback == nil {
				return 0
			}
			return fallback(a, b)
		}
	}
}
