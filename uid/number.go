// File: number.go
// Title: Numeric View of UUID Values
// Description: Implements the bijective conversion between 128-bit UUID
//              values and their unsigned big-integer form, treating the
//              UUID bytes as one big-endian number. Together with the
//              signed 64-bit view of TSID this covers the numeric
//              interchange forms of all identifier types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with numeric conversions

package uid

import (
	"math/big"

	"github.com/google/uuid"

	ferror "github.com/msto63/foundation/core/error"
)

// uuidBits is the size of a UUID in bits
const uuidBits = 128

// UUIDToNumber returns the unsigned big-integer value of a UUID, reading
// its 16 bytes as one big-endian number. The conversion is total and
// bijective; UUIDFromNumber is its inverse.
func UUIDToNumber(u uuid.UUID) *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// UUIDFromNumber converts an unsigned big-integer value back into a UUID.
// Nil, negative, and values wider than 128 bits are rejected.
func UUIDFromNumber(n *big.Int) (uuid.UUID, error) {
	if n == nil {
		return uuid.Nil, ferror.New("argument \"n\" must not be nil").
			WithCode(ferror.CodeNilArgument)
	}
	if n.Sign() < 0 {
		return uuid.Nil, ferror.Newf("value %s is negative", n).
			WithCode(ferror.CodeOutOfRange)
	}
	if n.BitLen() > uuidBits {
		return uuid.Nil, ferror.Newf("value has %d bits, at most %d fit into a UUID", n.BitLen(), uuidBits).
			WithCode(ferror.CodeOutOfRange)
	}
	var u uuid.UUID
	n.FillBytes(u[:])
	return u, nil
}
