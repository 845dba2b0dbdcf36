// File: temporal.go
// Title: Converters for Date/Time Types
// Description: Implements the Converter contract for time.Time (ISO-8601 /
//              RFC 3339) and time.Duration values. TimeConverter supports a
//              caller-supplied layout for the rarer formats while defaulting
//              to RFC 3339.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with temporal converters

package convertx

import (
	"time"

	"github.com/msto63/foundation/core/validation"
)

// TimeConverter converts between strings and time.Time values. The zero
// value converts RFC 3339 text; set Layout for other formats.
type TimeConverter struct {
	// Layout is the reference layout used for both directions; empty
	// means time.RFC3339
	Layout string
}

func (c TimeConverter) layout() string {
	if c.Layout == "" {
		return time.RFC3339
	}
	return c.Layout
}

// FromString parses a timestamp in the converter's layout
func (c TimeConverter) FromString(text string) (time.Time, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return time.Time{}, err
	}
	v, err := time.Parse(c.layout(), text)
	if err != nil {
		return time.Time{}, invalidInput("time.Time", text, err)
	}
	return v, nil
}

// ToString renders a timestamp in the converter's layout
func (c TimeConverter) ToString(value time.Time) string {
	return value.Format(c.layout())
}

// DurationConverter converts between strings and time.Duration values
// using Go duration syntax ("1h30m", "250ms", ...)
type DurationConverter struct{}

// FromString parses a duration
func (DurationConverter) FromString(text string) (time.Duration, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return 0, err
	}
	v, err := time.ParseDuration(text)
	if err != nil {
		return 0, invalidInput("time.Duration", text, err)
	}
	return v, nil
}

// ToString renders a duration
func (DurationConverter) ToString(value time.Duration) string {
	return value.String()
}
