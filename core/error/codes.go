// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the foundation library. All argument
//              and format violations detected by the library map onto one
//              of these codes so that callers can branch on the kind of
//              failure without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with library error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used throughout the foundation library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument validation
	CodeNilArgument   Code = "NIL_ARGUMENT"
	CodeEmptyArgument Code = "EMPTY_ARGUMENT"
	CodeBlankArgument Code = "BLANK_ARGUMENT"

	// Format and validation of textual encodings
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeInvalidCharacter Code = "INVALID_CHARACTER"
	CodeInvalidSeparator Code = "INVALID_SEPARATOR"

	// Value domain violations
	CodeOutOfRange Code = "OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
