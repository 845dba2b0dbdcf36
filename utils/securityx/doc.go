// File: doc.go
// Title: Package Documentation for securityx
// Description: Package securityx provides SHA-256 hashing helpers and
//              classic Diffie-Hellman key exchange helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package securityx provides small security helpers.
//
// The hashing helpers wrap crypto/sha256 with the byte, string, and hex
// convenience forms callers usually want. The Diffie-Hellman helpers
// implement classic finite-field key agreement over the RFC 3526 2048-bit
// MODP group:
//
//	alice, _ := securityx.Group14().GenerateKeyPair()
//	bob, _ := securityx.Group14().GenerateKeyPair()
//	k1, _ := alice.DeriveKey(bob.Public)
//	k2, _ := bob.DeriveKey(alice.Public)
//	// k1 and k2 are equal
//
// The helpers are pure math; transporting the public values between the
// parties is out of scope.
package securityx
