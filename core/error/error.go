// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used by every package
//              of the foundation library. An Error carries a message, an
//              optional wrapped cause, a classification Code, a Severity,
//              and a free-form details map. The type is fully compatible
//              with the standard errors package (errors.Is, errors.As,
//              errors.Unwrap).
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with structured errors

package error

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityLow,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(cause error, message string) *Error {
	e := New(message)
	e.cause = cause
	// Inherit classification from a wrapped foundation error
	var fe *Error
	if stderrors.As(cause, &fe) {
		e.code = fe.code
		e.severity = fe.severity
	}
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, format string, args ...interface{}) *Error {
	return Wrap(cause, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	if e.code != CodeUnknown {
		sb.WriteString(string(e.code))
		sb.WriteString(": ")
	}
	sb.WriteString(e.message)
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}
	return sb.String()
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation during which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail key-value pair
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails merges multiple details at once
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded operation name
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the details map (may be nil)
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// Message returns the bare message without code prefix or cause chain
func (e *Error) Message() string {
	return e.message
}

// CodeOf extracts the Code from any error. It returns CodeUnknown for nil
// errors and for errors that are not foundation errors anywhere in their
// chain.
func CodeOf(err error) Code {
	var fe *Error
	if stderrors.As(err, &fe) {
		return fe.code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
