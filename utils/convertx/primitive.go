// File: primitive.go
// Title: Converters for Primitive and Numeric Types
// Description: Implements the Converter contract for booleans, signed and
//              unsigned integers, floating point numbers, arbitrary
//              precision integers, and hex-encoded byte slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with primitive converters

package convertx

import (
	"math/big"
	"strconv"

	"github.com/msto63/foundation/core/validation"
	"github.com/msto63/foundation/utils/encodingx"
)

// BoolConverter converts between strings and booleans using strconv
// syntax ("true", "false", "1", "0", ...); output is canonical
// "true"/"false"
type BoolConverter struct{}

// FromString parses a boolean
func (BoolConverter) FromString(text string) (bool, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, invalidInput("bool", text, err)
	}
	return v, nil
}

// ToString renders a boolean
func (BoolConverter) ToString(value bool) string {
	return strconv.FormatBool(value)
}

// IntConverter converts between decimal strings and int64 values
type IntConverter struct{}

// FromString parses a signed decimal integer
func (IntConverter) FromString(text string) (int64, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, invalidInput("int64", text, err)
	}
	return v, nil
}

// ToString renders a signed decimal integer
func (IntConverter) ToString(value int64) string {
	return strconv.FormatInt(value, 10)
}

// UintConverter converts between decimal strings and uint64 values
type UintConverter struct{}

// FromString parses an unsigned decimal integer
func (UintConverter) FromString(text string) (uint64, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, invalidInput("uint64", text, err)
	}
	return v, nil
}

// ToString renders an unsigned decimal integer
func (UintConverter) ToString(value uint64) string {
	return strconv.FormatUint(value, 10)
}

// FloatConverter converts between strings and float64 values. Output uses
// the shortest representation that round-trips.
type FloatConverter struct{}

// FromString parses a floating point number
func (FloatConverter) FromString(text string) (float64, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalidInput("float64", text, err)
	}
	return v, nil
}

// ToString renders a floating point number
func (FloatConverter) ToString(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// BigIntConverter converts between decimal strings and *big.Int values.
// A nil value renders as the empty string.
type BigIntConverter struct{}

// FromString parses an arbitrary precision decimal integer
func (BigIntConverter) FromString(text string) (*big.Int, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, invalidInput("big.Int", text, nil)
	}
	return v, nil
}

// ToString renders an arbitrary precision decimal integer
func (BigIntConverter) ToString(value *big.Int) string {
	if value == nil {
		return ""
	}
	return value.String()
}

// HexBytesConverter converts between hex strings and byte slices; output
// is lower-case hex
type HexBytesConverter struct{}

// FromString decodes a hex string of either casing
func (HexBytesConverter) FromString(text string) ([]byte, error) {
	return encodingx.DecodeHex(text)
}

// ToString encodes bytes as lower-case hex
func (HexBytesConverter) ToString(value []byte) string {
	return encodingx.EncodeHex(value)
}
