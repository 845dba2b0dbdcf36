// File: doc.go
// Title: Package Documentation for encodingx
// Description: Package encodingx provides numeric base-32 and hex encoding
//              helpers for the foundation library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package encodingx provides small encoding helpers that extend the
// standard library's encoding packages.
//
// The Alphabet type implements fixed-width base-32 encoding of uint64
// values over a custom 32-character alphabet. When the alphabet is ordered
// by ASCII value, encoded strings compare lexicographically exactly like
// the encoded numbers, which is the property sortable identifier formats
// such as uid.TSID rely on:
//
//	a := encodingx.MustAlphabet("0123456789ABCDEFGHJKMNPRSTUVWXYZ")
//	s, _ := a.EncodeUint64(123456789, 13)
//	n, _ := a.DecodeUint64(s) // n == 123456789
//
// The hex helpers wrap encoding/hex with the library's structured
// validation errors.
package encodingx
