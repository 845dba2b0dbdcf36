// File: doc.go
// Title: Package Documentation for comparex
// Description: Package comparex provides comparator builders compatible
//              with slices.SortFunc.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package comparex builds comparators.
//
// A Comparator[T] follows the cmp.Compare convention and plugs directly
// into slices.SortFunc and slices.SortStableFunc:
//
//	byName := comparex.ByKey(func(u User) string { return u.Name })
//	slices.SortFunc(users, comparex.Chain(byName, byAge))
//
// ByList implements an explicit priority ordering: listed values sort by
// list position, unlisted values sort after all listed ones and among
// themselves by a caller-chosen fallback. This is the ordering needed for
// "these known categories first, everything else alphabetically" style
// requirements.
package comparex
