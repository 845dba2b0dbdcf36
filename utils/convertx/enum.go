// File: enum.go
// Title: Generic Enum Converter
// Description: Implements the Converter contract for string-backed enum
//              types over an explicit, fixed set of permitted values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with enum converter

package convertx

import (
	ferror "github.com/msto63/foundation/core/error"
	"github.com/msto63/foundation/core/validation"
)

// EnumConverter converts between strings and values of a string-backed
// enum type, accepting only the values it was constructed with
type EnumConverter[T ~string] struct {
	kind   string
	values map[string]T
	order  []T
}

// NewEnumConverter builds an EnumConverter for the given permitted values.
// kind names the enum in error messages; values must not be empty.
func NewEnumConverter[T ~string](kind string, values ...T) (*EnumConverter[T], error) {
	if err := validation.RequireNotBlank("kind", kind); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ferror.Newf("enum %q needs at least one permitted value", kind).
			WithCode(ferror.CodeEmptyArgument)
	}
	c := &EnumConverter[T]{
		kind:   kind,
		values: make(map[string]T, len(values)),
		order:  make([]T, 0, len(values)),
	}
	for _, v := range values {
		if _, dup := c.values[string(v)]; dup {
			continue
		}
		c.values[string(v)] = v
		c.order = append(c.order, v)
	}
	return c, nil
}

// FromString maps text onto a permitted enum value
func (c *EnumConverter[T]) FromString(text string) (T, error) {
	var zero T
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return zero, err
	}
	v, ok := c.values[text]
	if !ok {
		return zero, ferror.Newf("%q is not a permitted %s value", text, c.kind).
			WithCode(ferror.CodeInvalidFormat).
			WithDetail("kind", c.kind)
	}
	return v, nil
}

// ToString renders the enum value as its string form
func (c *EnumConverter[T]) ToString(value T) string {
	return string(value)
}

// Values returns the permitted values in construction order
func (c *EnumConverter[T]) Values() []T {
	out := make([]T, len(c.order))
	copy(out, c.order)
	return out
}
