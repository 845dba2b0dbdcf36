// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used across
//              the foundation library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package error provides structured errors for the foundation library.
//
// Every failure surfaced by a foundation package is an *Error carrying a
// classification Code, a Severity, and optional operation/detail metadata.
// The type interoperates with the standard errors package:
//
//	_, err := uid.ParseMAC("not-a-mac")
//	if ferror.HasCode(err, ferror.CodeInvalidFormat) {
//		// handle malformed input
//	}
//
// Errors are created with New/Newf, or Wrap/Wrapf when a cause should be
// preserved, and classified with the fluent WithCode/WithSeverity/WithDetail
// builders. All validation failures are detected eagerly at the public API
// boundary and returned synchronously; nothing is retried or deferred.
package error
