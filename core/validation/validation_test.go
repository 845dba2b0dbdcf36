// File: validation_test.go
// Title: Unit Tests for Argument Precondition Helpers
// Description: Table-driven tests covering the nil, empty, blank, and
//              range precondition helpers and their error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial test implementation

package validation

import (
	"testing"

	ferror "github.com/msto63/foundation/core/error"
)

func TestRequireNotNil(t *testing.T) {
	if err := RequireNotNil("arg", "value"); err != nil {
		t.Errorf("non-nil value rejected: %v", err)
	}
	err := RequireNotNil("arg", nil)
	if !ferror.HasCode(err, ferror.CodeNilArgument) {
		t.Errorf("code = %v; want NIL_ARGUMENT", ferror.CodeOf(err))
	}
}

func TestRequireNotEmpty(t *testing.T) {
	if err := RequireNotEmpty("arg", "x"); err != nil {
		t.Errorf("non-empty string rejected: %v", err)
	}
	if err := RequireNotEmpty("arg", " "); err != nil {
		t.Errorf("whitespace is not empty, but was rejected: %v", err)
	}
	err := RequireNotEmpty("arg", "")
	if !ferror.HasCode(err, ferror.CodeEmptyArgument) {
		t.Errorf("code = %v; want EMPTY_ARGUMENT", ferror.CodeOf(err))
	}
}

func TestRequireNotBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ferror.Code
	}{
		{"content", "hello", ferror.CodeUnknown},
		{"content with padding", "  hello  ", ferror.CodeUnknown},
		{"empty", "", ferror.CodeEmptyArgument},
		{"spaces", "   ", ferror.CodeBlankArgument},
		{"mixed whitespace", " \t\n ", ferror.CodeBlankArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireNotBlank("arg", tt.input)
			if tt.code == ferror.CodeUnknown {
				if err != nil {
					t.Errorf("valid input rejected: %v", err)
				}
				return
			}
			if !ferror.HasCode(err, tt.code) {
				t.Errorf("code = %v; want %v", ferror.CodeOf(err), tt.code)
			}
		})
	}
}

func TestRequireRange(t *testing.T) {
	if err := RequireRange("arg", 5, 0, 10); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
	if err := RequireRange("arg", 0, 0, 10); err != nil {
		t.Errorf("lower bound rejected: %v", err)
	}
	if err := RequireRange("arg", 10, 0, 10); err != nil {
		t.Errorf("upper bound rejected: %v", err)
	}
	for _, v := range []int64{-1, 11} {
		err := RequireRange("arg", v, 0, 10)
		if !ferror.HasCode(err, ferror.CodeOutOfRange) {
			t.Errorf("RequireRange(%d) code = %v; want OUT_OF_RANGE", v, ferror.CodeOf(err))
		}
	}
}

func TestRequireNonNegative(t *testing.T) {
	if err := RequireNonNegative("arg", 0); err != nil {
		t.Errorf("zero rejected: %v", err)
	}
	err := RequireNonNegative("arg", -3)
	if !ferror.HasCode(err, ferror.CodeOutOfRange) {
		t.Errorf("code = %v; want OUT_OF_RANGE", ferror.CodeOf(err))
	}
}
