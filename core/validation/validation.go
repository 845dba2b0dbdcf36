// File: validation.go
// Title: Argument Precondition Helpers
// Description: Implements the eager argument checks used at every public
//              API boundary of the foundation library. Each helper returns
//              a structured error with the matching classification code, or
//              nil when the precondition holds. Nothing is logged, queued,
//              or retried; violations are plain library-call failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with precondition helpers

package validation

import (
	"strings"

	ferror "github.com/msto63/foundation/core/error"
)

// RequireNotNil returns a nil-argument error when value is nil.
// It sees through typed nil interface values for pointers, maps, slices,
// funcs, and channels via the any comparison only; callers holding typed
// nils should check before boxing.
func RequireNotNil(name string, value interface{}) error {
	if value == nil {
		return ferror.Newf("argument %q must not be nil", name).
			WithCode(ferror.CodeNilArgument).
			WithDetail("argument", name)
	}
	return nil
}

// RequireNotEmpty returns an empty-argument error when s has length zero
func RequireNotEmpty(name, s string) error {
	if len(s) == 0 {
		return ferror.Newf("argument %q must not be empty", name).
			WithCode(ferror.CodeEmptyArgument).
			WithDetail("argument", name)
	}
	return nil
}

// RequireNotBlank returns an error when s is empty or contains only
// whitespace. An empty string reports CodeEmptyArgument, a whitespace-only
// string reports CodeBlankArgument, so callers can distinguish the two.
func RequireNotBlank(name, s string) error {
	if err := RequireNotEmpty(name, s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return ferror.Newf("argument %q must not be blank", name).
			WithCode(ferror.CodeBlankArgument).
			WithDetail("argument", name)
	}
	return nil
}

// RequireRange returns an out-of-range error when value is outside [min, max]
func RequireRange(name string, value, min, max int64) error {
	if value < min || value > max {
		return ferror.Newf("argument %q is %d, must be in [%d, %d]", name, value, min, max).
			WithCode(ferror.CodeOutOfRange).
			WithDetail("argument", name).
			WithDetail("value", value)
	}
	return nil
}

// RequireNonNegative returns an out-of-range error when value is negative
func RequireNonNegative(name string, value int64) error {
	if value < 0 {
		return ferror.Newf("argument %q is %d, must not be negative", name, value).
			WithCode(ferror.CodeOutOfRange).
			WithDetail("argument", name).
			WithDetail("value", value)
	}
	return nil
}
