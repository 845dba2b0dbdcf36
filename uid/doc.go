// File: doc.go
// Title: Package Documentation for uid
// Description: Package uid provides unique identifier generation for the
//              foundation library: timebased UUIDs, version-7 UUIDs, the
//              TSID type, and node id / MAC address handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial documentation

// Package uid generates unique, time-sortable identifiers.
//
// Three identifier families are provided:
//
//   - NewTimebased / NewTimebasedWithNode produce RFC 4122 version-1
//     UUIDs from a 60-bit timestamp, a 14-bit clock sequence, and a
//     48-bit node id.
//   - NewV7 produces RFC 9562 version-7 UUIDs whose byte order is the
//     generation order.
//   - NewTSID produces compact 64-bit TSID values with a fixed-width,
//     lexicographically sortable string form.
//
// All generators share the same correctness contract: identifiers
// generated within one process are strictly increasing and never collide,
// even under concurrent callers. The only synchronization is a narrow
// critical section around each generator's (timestamp, sequence) pair;
// generation never blocks on I/O and completes in bounded time.
//
// The node identity used by the timebased generator is resolved lazily on
// first use, once per process: the hardware address of a network
// interface when one is usable, otherwise a pseudo-random id carrying the
// multicast marker bit. NodeID never fails.
//
// UUID values are represented by github.com/google/uuid's UUID type, so
// they interoperate directly with its parsing, formatting, and SQL/JSON
// support.
package uid
