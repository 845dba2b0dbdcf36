// File: doc.go
// Title: Package Documentation for validation
// Description: Package validation provides argument precondition helpers
//              shared by all foundation packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package validation provides eager argument precondition helpers.
//
// The helpers implement the library's error taxonomy for parameters:
// nil arguments, empty and blank strings, and numeric range violations.
// Each helper returns nil on success or a structured core/error value
// with the matching code:
//
//	if err := validation.RequireNotBlank("text", text); err != nil {
//		return TSID{}, err
//	}
package validation
