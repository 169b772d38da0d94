// SPDX-License-Identifier: MIT
package proximity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/versegraph/proximity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, proximity.Distance(proximity.Point{}, proximity.Point{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, math.Sqrt(3), proximity.Distance(proximity.Point{X: 1, Y: 1, Z: 1}, proximity.Point{}), 1e-12)
	assert.Zero(t, proximity.Distance(proximity.Point{X: 2}, proximity.Point{X: 2}))
}

// TestNewRanker_MissingCoordinate reports the lowest missing ID.
func TestNewRanker_MissingCoordinate(t *testing.T) {
	coords := map[int]proximity.Point{1: {}, 4: {}}
	_, err := proximity.NewRanker([]int{4, 3, 1, 2}, coords)
	require.ErrorIs(t, err, proximity.ErrMissingCoordinate)
	assert.Contains(t, err.Error(), "item 2")
}

func TestNewRanker_NonFinite(t *testing.T) {
	coords := map[int]proximity.Point{1: {}, 2: {Y: math.NaN()}}
	_, err := proximity.NewRanker([]int{1, 2}, coords)
	require.ErrorIs(t, err, proximity.ErrInvalidCoordinate)

	coords[2] = proximity.Point{Z: math.Inf(-1)}
	_, err = proximity.NewRanker([]int{1, 2}, coords)
	require.ErrorIs(t, err, proximity.ErrInvalidCoordinate)
}

// TestNearest_OrderAndTies checks distance order with the lower-ID tie-break.
func TestNearest_OrderAndTies(t *testing.T) {
	coords := map[int]proximity.Point{
		1: {X: 0},
		2: {X: 1},
		3: {X: -1}, // same distance from 1 as item 2
		4: {X: 5},
		5: {X: 0.5},
	}
	r, err := proximity.NewRanker([]int{5, 4, 3, 2, 1, 1}, coords)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())

	got, err := r.Nearest(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, got)

	got, err = r.Nearest(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 3}, got)

	got, err = r.Nearest(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 3, 4}, got, "k beyond pool returns the whole pool")

	got, err = r.Nearest(1, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestNearest_AllCoincident falls back to pure ID order.
func TestNearest_AllCoincident(t *testing.T) {
	coords := map[int]proximity.Point{7: {}, 3: {}, 9: {}, 1: {}}
	r, err := proximity.NewRanker([]int{9, 7, 3, 1}, coords)
	require.NoError(t, err)
	got, err := r.Nearest(7, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestRank_UnknownItem(t *testing.T) {
	r, err := proximity.NewRanker([]int{1}, map[int]proximity.Point{1: {}})
	require.NoError(t, err)
	_, err = r.Rank(2, 1)
	require.ErrorIs(t, err, proximity.ErrItemNotFound)

	got, err := r.Nearest(1, 2)
	require.NoError(t, err)
	assert.Empty(t, got, "single item has no neighbors")
}

func TestRank_Distances(t *testing.T) {
	coords := map[int]proximity.Point{1: {}, 2: {Z: 2}, 3: {Z: -3}}
	r, err := proximity.NewRanker([]int{1, 2, 3}, coords)
	require.NoError(t, err)
	ranked, err := r.Rank(1, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, proximity.Neighbor{ID: 2, Distance: 2}, ranked[0])
	assert.Equal(t, proximity.Neighbor{ID: 3, Distance: 3}, ranked[1])

	p, ok := r.Point(3)
	require.True(t, ok)
	assert.Equal(t, -3.0, p.Z)
}
