// File: encodingx_test.go
// Title: Unit Tests for Encoding Helpers
// Description: Tests alphabet construction, fixed-width base-32 round
//              trips, lexicographic sortability, case-insensitive and
//              malformed decoding, and the hex helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial test implementation

package encodingx

import (
	"math"
	"strings"
	"testing"

	ferror "github.com/msto63/foundation/core/error"
)

const testAlphabet = "0123456789ABCDEFGHJKMNPRSTUVWXYZ"

func TestNewAlphabetRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		code  ferror.Code
	}{
		{"empty", "", ferror.CodeEmptyArgument},
		{"too short", "ABC", ferror.CodeInvalidLength},
		{"too long", testAlphabet + "!", ferror.CodeInvalidLength},
		{"duplicate", "00123456789ABCDEFGHJKMNPRSTUVWXY", ferror.CodeInvalidCharacter},
		{"non printable", "\x01123456789ABCDEFGHJKMNPRSTUVWXYZ", ferror.CodeInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlphabet(tt.chars)
			if !ferror.HasCode(err, tt.code) {
				t.Errorf("code = %v; want %v", ferror.CodeOf(err), tt.code)
			}
		})
	}
}

func TestMustAlphabetPanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAlphabet did not panic")
		}
	}()
	MustAlphabet("short")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := MustAlphabet(testAlphabet)

	values := []uint64{0, 1, 31, 32, 123456789, math.MaxInt64, math.MaxUint64}
	for _, v := range values {
		s, err := a.EncodeUint64(v, 13)
		if err != nil {
			t.Fatalf("EncodeUint64(%d) failed: %v", v, err)
		}
		if len(s) != 13 {
			t.Fatalf("EncodeUint64(%d) length = %d; want 13", v, len(s))
		}
		back, err := a.DecodeUint64(s)
		if err != nil {
			t.Fatalf("DecodeUint64(%q) failed: %v", s, err)
		}
		if back != v {
			t.Errorf("round trip of %d = %d", v, back)
		}
	}
}

func TestEncodeUint64WidthBounds(t *testing.T) {
	a := MustAlphabet(testAlphabet)

	if _, err := a.EncodeUint64(0, 0); !ferror.HasCode(err, ferror.CodeOutOfRange) {
		t.Error("width 0 not rejected")
	}
	if _, err := a.EncodeUint64(0, 14); !ferror.HasCode(err, ferror.CodeOutOfRange) {
		t.Error("width 14 not rejected")
	}
	if _, err := a.EncodeUint64(32, 1); !ferror.HasCode(err, ferror.CodeOutOfRange) {
		t.Error("value overflowing the width not rejected")
	}
	if s, err := a.EncodeUint64(31, 1); err != nil || s != "Z" {
		t.Errorf("EncodeUint64(31, 1) = %q, %v; want \"Z\"", s, err)
	}
}

func TestDecodeUint64CaseInsensitive(t *testing.T) {
	a := MustAlphabet(testAlphabet)

	upper, err := a.EncodeUint64(123456789, 13)
	if err != nil {
		t.Fatalf("EncodeUint64 failed: %v", err)
	}
	lower, err := a.DecodeUint64(strings.ToLower(upper))
	if err != nil {
		t.Fatalf("DecodeUint64 lower case failed: %v", err)
	}
	if lower != 123456789 {
		t.Errorf("case-insensitive decode = %d; want 123456789", lower)
	}
}

func TestDecodeUint64RejectsMalformedInput(t *testing.T) {
	a := MustAlphabet(testAlphabet)

	tests := []struct {
		name  string
		input string
		code  ferror.Code
	}{
		{"empty", "", ferror.CodeEmptyArgument},
		{"too long", "00000000000000", ferror.CodeInvalidLength},
		{"excluded letter", "I", ferror.CodeInvalidCharacter},
		{"punctuation", "AB&", ferror.CodeInvalidCharacter},
		{"overflow", "ZZZZZZZZZZZZZ", ferror.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.DecodeUint64(tt.input)
			if !ferror.HasCode(err, tt.code) {
				t.Errorf("code = %v; want %v", ferror.CodeOf(err), tt.code)
			}
		})
	}
}

func TestEncodedStringsSortLikeNumbers(t *testing.T) {
	a := MustAlphabet(testAlphabet)

	prevS := ""
	for _, v := range []uint64{0, 5, 31, 32, 1000, 1 << 40, math.MaxUint64} {
		s, err := a.EncodeUint64(v, 13)
		if err != nil {
			t.Fatalf("EncodeUint64(%d) failed: %v", v, err)
		}
		if prevS != "" && strings.Compare(prevS, s) >= 0 {
			t.Errorf("%q does not sort before %q", prevS, s)
		}
		prevS = s
	}
}

func TestHexRoundTrip(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}

	encoded := EncodeHex(data)
	if encoded != "deadbeef00" {
		t.Errorf("EncodeHex = %q; want %q", encoded, "deadbeef00")
	}
	if EncodeHexUpper(data) != "DEADBEEF00" {
		t.Errorf("EncodeHexUpper = %q; want %q", EncodeHexUpper(data), "DEADBEEF00")
	}

	back, err := DecodeHex(encoded)
	if err != nil {
		t.Fatalf("DecodeHex failed: %v", err)
	}
	if string(back) != string(data) {
		t.Errorf("round trip = %x; want %x", back, data)
	}
}

func TestDecodeHexRejectsMalformedInput(t *testing.T) {
	if _, err := DecodeHex(""); !ferror.HasCode(err, ferror.CodeEmptyArgument) {
		t.Error("empty input not rejected with EMPTY_ARGUMENT")
	}
	if _, err := DecodeHex("abc"); !ferror.HasCode(err, ferror.CodeInvalidLength) {
		t.Error("odd length not rejected with INVALID_LENGTH")
	}
	if _, err := DecodeHex("zz"); !ferror.HasCode(err, ferror.CodeInvalidCharacter) {
		t.Error("non-hex characters not rejected with INVALID_CHARACTER")
	}
}
