// File: doc.go
// Title: Package Documentation for convertx
// Description: Package convertx provides stateless bidirectional
//              string/value converters with a uniform contract and error
//              behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package convertx provides bidirectional string/value converters.
//
// Every converter implements the generic two-method Converter contract:
//
//	var c convertx.IntConverter
//	n, err := c.FromString("42") // 42, nil
//	s := c.ToString(n)           // "42"
//
// All converters share the same error behavior: empty input is rejected
// with an empty-argument error, malformed input with a uniform
// invalid-format error carrying the target kind as a detail. Converters
// are stateless values (except EnumConverter, which carries its permitted
// value set) and safe for concurrent use.
//
// Converters exist for booleans, integers, floats, big integers, hex byte
// slices, timestamps and durations, UUIDs and TSIDs, BCP 47 language
// tags, ISO 4217 currency units, and string-backed enums.
package convertx
