// File: identifier.go
// Title: Converters for Unique Identifier Types
// Description: Implements the Converter contract for uuid.UUID and
//              uid.TSID values, delegating parsing and formatting to the
//              respective codecs so that the string converters and the
//              identifier packages can never disagree on the canonical
//              textual form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with identifier converters

package convertx

import (
	"github.com/google/uuid"

	"github.com/msto63/foundation/core/validation"
	"github.com/msto63/foundation/uid"
)

// UUIDConverter converts between canonical UUID text
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx) and uuid.UUID values; output is
// lower-case hex
type UUIDConverter struct{}

// FromString parses a UUID in any format uuid.Parse accepts
func (UUIDConverter) FromString(text string) (uuid.UUID, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return uuid.Nil, err
	}
	v, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, invalidInput("uuid.UUID", text, err)
	}
	return v, nil
}

// ToString renders the canonical lower-case hyphenated form
func (UUIDConverter) ToString(value uuid.UUID) string {
	return value.String()
}

// TSIDConverter converts between the canonical 13-character TSID form and
// uid.TSID values
type TSIDConverter struct{}

// FromString parses everything uid.TSIDFromString accepts
func (TSIDConverter) FromString(text string) (uid.TSID, error) {
	return uid.TSIDFromString(text)
}

// ToString renders the canonical 13-character form
func (TSIDConverter) ToString(value uid.TSID) string {
	return value.String()
}
