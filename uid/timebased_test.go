// File: timebased_test.go
// Title: Unit Tests for the Timebased UUID Generator
// Description: Tests version/variant bits, the node component, strict
//              ordering of sequential UUIDs, and collision freedom under
//              concurrent generation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial test implementation

package uid

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	ferror "github.com/msto63/foundation/core/error"
)

func TestNewTimebasedLayout(t *testing.T) {
	u, err := NewTimebased()
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(1), u.Version())
	assert.Equal(t, uuid.RFC4122, u.Variant())
}

func TestNewTimebasedWithNodeEmbedsNode(t *testing.T) {
	const node = uint64(0x0A1B2C3D4E5F)

	a, err := NewTimebasedWithNode(node)
	require.NoError(t, err)
	b, err := NewTimebasedWithNode(node)
	require.NoError(t, err)

	assert.Equal(t, a[10:16], b[10:16], "same explicit node id must yield identical node components")
	assert.Equal(t, []byte{0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}, []byte(a[10:16]))
}

func TestNewTimebasedWithNodeRejectsOversizedNode(t *testing.T) {
	_, err := NewTimebasedWithNode(MaxNode + 1)
	require.Error(t, err)
	assert.Equal(t, ferror.CodeOutOfRange, ferror.CodeOf(err))
}

func TestNewTimebasedIsStrictlyOrdered(t *testing.T) {
	prev, err := NewTimebased()
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		next, err := NewTimebased()
		require.NoError(t, err)
		require.Positivef(t, CompareTimebased(next, prev), "UUID %d not after its predecessor", i)
		prev = next
	}
}

func TestTimebasedTimeIsCurrent(t *testing.T) {
	before := time.Now().Add(-time.Second)
	u, err := NewTimebased()
	require.NoError(t, err)
	after := time.Now().Add(time.Second)

	ts := TimebasedTime(u)
	assert.True(t, ts.After(before) && ts.Before(after), "embedded timestamp %v outside [%v, %v]", ts, before, after)
}

func TestNewTimebasedConcurrentGenerationIsCollisionFree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping high-volume collision test in short mode")
	}

	const (
		goroutines = 16
		perRoutine = 100000
	)

	results := make([][]uuid.UUID, goroutines)
	var g errgroup.Group
	for w := 0; w < goroutines; w++ {
		results[w] = make([]uuid.UUID, 0, perRoutine)
		g.Go(func() error {
			for i := 0; i < perRoutine; i++ {
				u, err := NewTimebased()
				if err != nil {
					return err
				}
				results[w] = append(results[w], u)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[uuid.UUID]struct{}, goroutines*perRoutine)
	for _, batch := range results {
		for _, u := range batch {
			_, dup := seen[u]
			require.Falsef(t, dup, "duplicate UUID %s", u)
			seen[u] = struct{}{}
		}
	}
	assert.Len(t, seen, goroutines*perRoutine)
}

func TestNewTimebasedConcurrentTicksAreUnique(t *testing.T) {
	// the per-process tick must be strictly increasing, so every UUID
	// carries a distinct timestamp regardless of interleaving
	const n = 5000

	var mu sync.Mutex
	ticks := make(map[uint64]struct{}, n)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < n/8; i++ {
				u, err := NewTimebased()
				if err != nil {
					return err
				}
				mu.Lock()
				ticks[TimebasedTick(u)] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, ticks, n)
}
