// File: hex.go
// Title: Hex Encoding Helpers
// Description: Thin helpers around encoding/hex that translate its errors
//              into the library's structured error taxonomy and canonicalize
//              output casing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with hex helpers

package encodingx

import (
	"encoding/hex"
	"strings"

	ferror "github.com/msto63/foundation/core/error"
	"github.com/msto63/foundation/core/validation"
)

// EncodeHex returns the lower-case hex encoding of data
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// EncodeHexUpper returns the upper-case hex encoding of data
func EncodeHexUpper(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// DecodeHex decodes a hex string of either casing. Odd-length input is
// rejected with an invalid-length error, non-hex characters with an
// invalid-character error.
func DecodeHex(s string) ([]byte, error) {
	if err := validation.RequireNotEmpty("s", s); err != nil {
		return nil, err
	}
	if len(s)%2 != 0 {
		return nil, ferror.Newf("hex input has odd length %d", len(s)).
			WithCode(ferror.CodeInvalidLength)
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, ferror.Wrapf(err, "malformed hex input %q", s).
			WithCode(ferror.CodeInvalidCharacter)
	}
	return data, nil
}
