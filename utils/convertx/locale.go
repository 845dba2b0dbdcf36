// File: locale.go
// Title: Converters for Locale and Currency Types
// Description: Implements the Converter contract for BCP 47 language tags
//              and ISO 4217 currency units on top of golang.org/x/text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with locale converters

package convertx

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/msto63/foundation/core/validation"
)

// LanguageConverter converts between BCP 47 tags ("de-DE", "en", ...) and
// language.Tag values
type LanguageConverter struct{}

// FromString parses a BCP 47 language tag. Parsing is strict: ill-formed
// tags are rejected rather than repaired.
func (LanguageConverter) FromString(text string) (language.Tag, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return language.Und, err
	}
	v, err := language.Parse(text)
	if err != nil {
		return language.Und, invalidInput("language.Tag", text, err)
	}
	return v, nil
}

// ToString renders the canonical BCP 47 form
func (LanguageConverter) ToString(value language.Tag) string {
	return value.String()
}

// CurrencyConverter converts between ISO 4217 codes ("EUR", "USD", ...)
// and currency.Unit values; codes are matched case-insensitively and
// rendered upper-case
type CurrencyConverter struct{}

// FromString parses an ISO 4217 currency code
func (CurrencyConverter) FromString(text string) (currency.Unit, error) {
	if err := validation.RequireNotEmpty("text", text); err != nil {
		return currency.XXX, err
	}
	v, err := currency.ParseISO(text)
	if err != nil {
		return currency.XXX, invalidInput("currency.Unit", text, err)
	}
	return v, nil
}

// ToString renders the upper-case ISO 4217 code
func (CurrencyConverter) ToString(value currency.Unit) string {
	return value.String()
}
