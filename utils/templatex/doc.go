// File: doc.go
// Title: Package Documentation for templatex
// Description: Package templatex provides simple ${name} placeholder
//              substitution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package templatex substitutes ${name} placeholders in strings.
//
//	out := templatex.Substitute("hello ${who}", map[string]string{"who": "world"})
//	// "hello world"
//
// Placeholders without a value are left intact for later passes, "$$"
// escapes a literal dollar, and anything that is not a well-formed
// placeholder is copied through verbatim. There is deliberately no
// conditional, loop, or expression syntax.
package templatex
