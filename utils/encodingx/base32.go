// File: base32.go
// Title: Fixed-Width Base-32 Encoding over Custom Alphabets
// Description: Implements fixed-width base-32 encoding and decoding of
//              unsigned 64-bit values over caller-supplied 32-character
//              alphabets. Unlike encoding/base32 this operates on numeric
//              values rather than byte streams, which is what sortable
//              identifier formats need: when the alphabet is in ascending
//              ASCII order the encoded strings sort exactly like the
//              underlying numbers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with Alphabet type

package encodingx

import (
	ferror "github.com/msto63/foundation/core/error"
	"github.com/msto63/foundation/core/validation"
)

const (
	alphabetSize = 32
	bitsPerChar  = 5
)

// Alphabet is an immutable 32-character encoding alphabet. Decoding is
// case-insensitive for ASCII letters; encoding always emits the characters
// exactly as given to NewAlphabet.
type Alphabet struct {
	chars [alphabetSize]byte
	index [256]int8
}

// NewAlphabet builds an Alphabet from a string of exactly 32 distinct
// printable ASCII characters
func NewAlphabet(chars string) (Alphabet, error) {
	var a Alphabet
	if err := validation.RequireNotEmpty("chars", chars); err != nil {
		return a, err
	}
	if len(chars) != alphabetSize {
		return a, ferror.Newf("alphabet has %d characters, need %d", len(chars), alphabetSize).
			WithCode(ferror.CodeInvalidLength)
	}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < alphabetSize; i++ {
		c := chars[i]
		if c < '!' || c > '~' {
			return a, ferror.Newf("alphabet character %q at %d is not printable ASCII", c, i).
				WithCode(ferror.CodeInvalidCharacter)
		}
		if a.index[c] >= 0 {
			return a, ferror.Newf("alphabet character %q appears twice", c).
				WithCode(ferror.CodeInvalidCharacter)
		}
		a.chars[i] = c
		a.index[c] = int8(i)
	}
	// case-insensitive lookup for letters not already claimed
	for i := 0; i < alphabetSize; i++ {
		c := a.chars[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if a.index[c+32] < 0 {
				a.index[c+32] = int8(i)
			}
		case c >= 'a' && c <= 'z':
			if a.index[c-32] < 0 {
				a.index[c-32] = int8(i)
			}
		}
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid input.
// Intended for package-level alphabet constants.
func MustAlphabet(chars string) Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// EncodeUint64 encodes v as exactly width base-32 characters, most
// significant character first. Width must be between 1 and 13; values that
// do not fit into width characters are rejected with an out-of-range error.
func (a Alphabet) EncodeUint64(v uint64, width int) (string, error) {
	if width < 1 || width > 13 {
		return "", ferror.Newf("width is %d, must be in [1, 13]", width).
			WithCode(ferror.CodeOutOfRange)
	}
	if width < 13 && v >= uint64(1)<<(bitsPerChar*width) {
		return "", ferror.Newf("value %d does not fit into %d base-32 characters", v, width).
			WithCode(ferror.CodeOutOfRange)
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = a.chars[v&0x1F]
		v >>= bitsPerChar
	}
	return string(buf), nil
}

// DecodeUint64 decodes a fixed-width base-32 string produced by
// EncodeUint64. Letters are matched case-insensitively. Characters outside
// the alphabet and values exceeding 64 bits are rejected.
func (a Alphabet) DecodeUint64(s string) (uint64, error) {
	if err := validation.RequireNotEmpty("s", s); err != nil {
		return 0, err
	}
	if len(s) > 13 {
		return 0, ferror.Newf("input has %d characters, at most 13 fit into 64 bits", len(s)).
			WithCode(ferror.CodeInvalidLength)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := a.index[s[i]]
		if d < 0 {
			return 0, ferror.Newf("character %q at position %d is not in the alphabet", s[i], i).
				WithCode(ferror.CodeInvalidCharacter)
		}
		if v > (1<<64-1)>>bitsPerChar {
			return 0, ferror.Newf("value of %q overflows 64 bits", s).
				WithCode(ferror.CodeOutOfRange)
		}
		v = v<<bitsPerChar | uint64(d)
	}
	return v, nil
}

// Contains reports whether c is a significant character of the alphabet,
// matching letters case-insensitively
func (a Alphabet) Contains(c byte) bool {
	return a.index[c] >= 0
}
