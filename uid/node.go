// File: node.go
// Title: Node Identity Provider and MAC Address Handling
// Description: Resolves the 48-bit node identifier embedded into timebased
//              UUIDs. The id is derived once per process from the first
//              usable hardware address of a network interface; when no
//              interface is usable the provider silently falls back to a
//              pseudo-random id with the multicast bit set, which marks it
//              as not hardware-derived per RFC 4122. The file also contains
//              the conversions between 48-bit node ids and textual MAC
//              notation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with node id resolution

package uid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"sync"

	ferror "github.com/msto63/foundation/core/error"
	"github.com/msto63/foundation/core/validation"
)

const (
	// NodeBits is the width of a node identifier
	NodeBits = 48

	// MaxNode is the largest valid node identifier
	MaxNode = uint64(1)<<NodeBits - 1

	// multicastBit marks a node id as synthesized rather than read from
	// hardware (RFC 4122 section 4.5)
	multicastBit = uint64(1) << 40

	macSegments = 6
)

var (
	nodeOnce   sync.Once
	nodeCached uint64
)

// NodeID returns the node identifier of this process. The first call
// resolves it from a network interface or synthesizes a random one; all
// subsequent calls return the cached value. It never fails: "no usable
// interface" silently degrades to the random fallback.
func NodeID() uint64 {
	nodeOnce.Do(func() {
		nodeCached = resolveNodeID()
	})
	return nodeCached
}

func resolveNodeID() uint64 {
	if mac, ok := hardwareAddress(); ok {
		return mac
	}
	return randomNodeID()
}

// hardwareAddress returns the first 48-bit non-zero hardware address of a
// non-loopback interface
func hardwareAddress() (uint64, bool) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return 0, false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) != macSegments {
			continue
		}
		node := macToNode(iface.HardwareAddr)
		if node != 0 {
			return node, true
		}
	}
	return 0, false
}

// randomNodeID synthesizes a pseudo-random node id with the multicast bit
// set so it can never be mistaken for a genuine hardware address
func randomNodeID() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[2:]); err != nil {
		// degrade to a fixed marker value rather than failing; the
		// multicast bit still guarantees no clash with real hardware
		return multicastBit
	}
	return binary.BigEndian.Uint64(buf[:])&MaxNode | multicastBit
}

func macToNode(mac net.HardwareAddr) uint64 {
	var node uint64
	for _, b := range mac {
		node = node<<8 | uint64(b)
	}
	return node
}

// FormatMAC renders a 48-bit node id in canonical MAC notation: six
// upper-case hex octets delimited by colons
func FormatMAC(node uint64) (string, error) {
	if node > MaxNode {
		return "", ferror.Newf("node id %#x exceeds 48 bits", node).
			WithCode(ferror.CodeOutOfRange)
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		byte(node>>40), byte(node>>32), byte(node>>24),
		byte(node>>16), byte(node>>8), byte(node)), nil
}

// ParseMAC converts textual MAC notation into a 48-bit node id. Both colon
// and hyphen delimiters are accepted, but not mixed within one address;
// hex digits are matched case-insensitively. Malformed input is rejected
// with a code describing the defect: wrong segment structure, a bad
// delimiter mix, or non-hex characters.
func ParseMAC(text string) (uint64, error) {
	if err := validation.RequireNotBlank("text", text); err != nil {
		return 0, err
	}

	sep := byte(':')
	if strings.IndexByte(text, ':') < 0 && strings.IndexByte(text, '-') >= 0 {
		sep = '-'
	}
	if strings.IndexByte(text, ':') >= 0 && strings.IndexByte(text, '-') >= 0 {
		return 0, ferror.Newf("MAC address %q mixes colon and hyphen delimiters", text).
			WithCode(ferror.CodeInvalidSeparator)
	}

	segments := strings.Split(text, string(sep))
	if len(segments) != macSegments {
		return 0, ferror.Newf("MAC address %q has %d segments, need %d", text, len(segments), macSegments).
			WithCode(ferror.CodeInvalidFormat)
	}

	var node uint64
	for _, seg := range segments {
		if len(seg) != 2 {
			return 0, ferror.Newf("MAC address segment %q has %d characters, need 2", seg, len(seg)).
				WithCode(ferror.CodeInvalidFormat)
		}
		hi, okHi := hexValue(seg[0])
		lo, okLo := hexValue(seg[1])
		if !okHi || !okLo {
			return 0, ferror.Newf("MAC address segment %q contains non-hex characters", seg).
				WithCode(ferror.CodeInvalidCharacter)
		}
		node = node<<8 | uint64(hi<<4|lo)
	}
	return node, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
