// File: converter.go
// Title: The Converter Contract
// Description: Defines the uniform bidirectional string/value converter
//              contract shared by every converter in the package, plus the
//              common construction of the uniform invalid-input error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with Converter interface

package convertx

import (
	ferror "github.com/msto63/foundation/core/error"
)

// Converter is the uniform two-method contract for stateless bidirectional
// mappers between text and typed values. FromString rejects malformed
// input with a structured validation error; ToString is total over the
// value domain.
type Converter[T any] interface {
	// FromString parses the textual form of a value
	FromString(text string) (T, error)

	// ToString renders the canonical textual form of a value
	ToString(value T) string
}

// invalidInput builds the uniform invalid-input error shared by all
// converters
func invalidInput(kind, text string, cause error) error {
	e := ferror.Newf("cannot convert %q to %s", text, kind).
		WithCode(ferror.CodeInvalidFormat).
		WithDetail("kind", kind)
	if cause != nil {
		e = ferror.Wrapf(cause, "cannot convert %q to %s", text, kind).
			WithCode(ferror.CodeInvalidFormat).
			WithDetail("kind", kind)
	}
	return e
}
