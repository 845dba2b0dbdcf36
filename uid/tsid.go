// File: tsid.go
// Title: TSID Type, Generator, and Codec
// Description: Implements the time-sortable 64-bit identifier type TSID:
//              42 bits of milliseconds since 2020-01-01T00:00:00Z followed
//              by a 22-bit sequence that is reseeded randomly on every new
//              millisecond and incremented within it. The canonical string
//              form is exactly 13 characters over a 32-character alphabet
//              in ascending ASCII order, so strings sort exactly like the
//              underlying numbers; easily-confused characters (I, L, O, Q)
//              are not part of the alphabet. The decoder additionally
//              accepts lower case and interior hyphen group separators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with TSID type and codec

package uid

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"strings"
	"sync"
	"time"

	ferror "github.com/msto63/foundation/core/error"
	"github.com/msto63/foundation/core/validation"
	"github.com/msto63/foundation/utils/encodingx"
)

const (
	// tsidEpochMillis is 2020-01-01T00:00:00Z, the custom epoch of the
	// TSID timestamp component
	tsidEpochMillis = 1577836800000

	tsidTimeBits = 42
	tsidSeqBits  = 22

	tsidSeqMask = uint64(1)<<tsidSeqBits - 1

	// fresh sequences are seeded into the lower half of the 22-bit space
	tsidSeedMask = tsidSeqMask >> 1

	// TSIDLength is the length of the canonical string form
	TSIDLength = 13
)

// tsidAlphabet is in ascending ASCII order and excludes I, L, O, and Q,
// the characters most easily confused with 1 and 0
var tsidAlphabet = encodingx.MustAlphabet("0123456789ABCDEFGHJKMNPRSTUVWXYZ")

// TSID is an immutable time-sortable 64-bit identifier. The zero value is
// the identifier with numeric value 0; TSIDs are created by NewTSID,
// TSIDFromNumber, or TSIDFromString.
type TSID int64

type tsidState struct {
	mu     sync.Mutex
	millis uint64
	seq    uint64
}

var tsidGen tsidState

// NewTSID generates a new TSID. Sequential calls yield strictly increasing
// identifiers, and concurrent calls never collide within one process; the
// random sequence seed keeps the collision probability across processes
// negligible.
func NewTSID() TSID {
	tsidGen.mu.Lock()
	defer tsidGen.mu.Unlock()

	now := uint64(time.Now().UnixMilli() - tsidEpochMillis)
	switch {
	case now > tsidGen.millis:
		tsidGen.millis = now
		tsidGen.seq = randomSeqSeed()
	case tsidGen.seq < tsidSeqMask:
		tsidGen.seq++
	default:
		// sequence exhausted within this millisecond: borrow the next one
		tsidGen.millis++
		tsidGen.seq = 0
	}
	return TSID(tsidGen.millis<<tsidSeqBits | tsidGen.seq)
}

// randomSeqSeed draws a random 21-bit sequence seed, preferring the
// crypto source and degrading to the runtime-seeded fallback when it is
// unavailable
func randomSeqSeed() uint64 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(mrand.Uint32()) & tsidSeedMask
	}
	return uint64(binary.BigEndian.Uint32(buf[:])) & tsidSeedMask
}

// TSIDFromNumber converts a signed 64-bit value into a TSID. The
// conversion is total and bijective; it is the inverse of Number.
func TSIDFromNumber(n int64) TSID {
	return TSID(n)
}

// TSIDFromString parses the textual form of a TSID. The canonical form is
// exactly 13 alphabet characters; lower-case letters and interior hyphen
// group separators are tolerated on input. Rejections carry distinct
// codes: empty input, blank input, misplaced separators, wrong significant
// length, characters outside the alphabet, and a leading character that
// would overflow 64 bits.
func TSIDFromString(text string) (TSID, error) {
	if err := validation.RequireNotBlank("text", text); err != nil {
		return 0, err
	}
	significant, err := stripSeparators(text)
	if err != nil {
		return 0, err
	}
	if len(significant) != TSIDLength {
		return 0, ferror.Newf("TSID string %q has %d significant characters, need %d",
			text, len(significant), TSIDLength).
			WithCode(ferror.CodeInvalidLength)
	}
	n, err := tsidAlphabet.DecodeUint64(significant)
	if err != nil {
		return 0, err
	}
	return TSID(n), nil
}

// stripSeparators removes hyphen group separators, rejecting hyphens in
// positions where they cannot separate two groups: leading, trailing, or
// adjacent to another hyphen
func stripSeparators(text string) (string, error) {
	if !strings.ContainsRune(text, '-') {
		return text, nil
	}
	var sb strings.Builder
	sb.Grow(len(text))
	prevSep := true // a hyphen at the start has nothing to separate
	for i := 0; i < len(text); i++ {
		if text[i] == '-' {
			if prevSep {
				return "", ferror.Newf("TSID string %q has a misplaced separator at position %d", text, i).
					WithCode(ferror.CodeInvalidSeparator)
			}
			prevSep = true
			continue
		}
		prevSep = false
		sb.WriteByte(text[i])
	}
	if text[len(text)-1] == '-' {
		return "", ferror.Newf("TSID string %q ends with a separator", text).
			WithCode(ferror.CodeInvalidSeparator)
	}
	return sb.String(), nil
}

// Number returns the signed 64-bit value of the TSID
func (t TSID) Number() int64 {
	return int64(t)
}

// String renders the canonical 13-character form. Strings of TSIDs
// generated by NewTSID sort lexicographically in generation order.
func (t TSID) String() string {
	s, err := tsidAlphabet.EncodeUint64(uint64(t), TSIDLength)
	if err != nil {
		// unreachable: every uint64 fits into 13 base-32 characters
		panic(err)
	}
	return s
}

// Compare orders two TSIDs by their unsigned bit pattern, which for
// generated identifiers is generation order. The result follows the usual
// comparator convention.
func (t TSID) Compare(other TSID) int {
	a, b := uint64(t), uint64(other)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Time returns the wall-clock instant encoded in the timestamp component
func (t TSID) Time() time.Time {
	millis := int64(uint64(t)>>tsidSeqBits) + tsidEpochMillis
	return time.UnixMilli(millis).UTC()
}

// MarshalText implements encoding.TextMarshaler using the canonical form
func (t TSID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting everything
// TSIDFromString accepts
func (t *TSID) UnmarshalText(data []byte) error {
	parsed, err := TSIDFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
