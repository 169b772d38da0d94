// SPDX-License-Identifier: MIT
package attrs_test

import (
	"testing"

	"github.com/katalvlaran/versegraph/attrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTables mirrors a slice of the poem corpus.
func sampleTables() (map[int][]string, map[int][]string) {
	themes := map[int][]string{
		1: {"Love", "Death", "Time", "Heaven", "Earth", "Fate"},
		2: {"Hope", "Serenity", "Beauty", "Renewal"},
		3: {"Mortality", "Death", "Time", "Inspiration", "Destiny", "Change"},
		4: {"Sea", "Eternity", "Hope"},
	}
	motifs := map[int][]string{
		1: {"Bee", "Garden", "Storm"},
		2: {"Garden", "Bee"},
		3: {"Bee", "Stars", "Moonlight"},
		4: {"Storm", "Path"},
	}

	return themes, motifs
}

// TestScore_Weighted checks the 3·themes + 2·motifs formula on known pairs.
func TestScore_Weighted(t *testing.T) {
	t.Parallel()
	s := attrs.NewScorer(attrs.NewIndex(sampleTables()))

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"1-2 motifs only", 1, 2, 2 * 2},
		{"1-3 two themes one motif", 1, 3, 3*2 + 2*1},
		{"1-4 one motif", 1, 4, 2},
		{"2-4 one theme", 2, 4, 3},
		{"3-4 nothing", 3, 4, 0},
		{"unknown ids", 99, 100, 0},
		{"one unknown", 1, 100, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, s.Score(tc.a, tc.b))
		})
	}
}

// TestScore_SymmetricNonNegative sweeps all pairs of the sample.
func TestScore_SymmetricNonNegative(t *testing.T) {
	s := attrs.NewScorer(attrs.NewIndex(sampleTables()))
	ids := []int{1, 2, 3, 4, 5}
	for _, a := range ids {
		for _, b := range ids {
			if a == b {
				continue
			}
			ab, ba := s.Score(a, b), s.Score(b, a)
			require.GreaterOrEqual(t, ab, 0)
			require.Equal(t, ab, ba, "Score(%d,%d) != Score(%d,%d)", a, b, b, a)
		}
	}
}

// TestScore_DuplicatesCollapse ensures duplicate labels count once.
func TestScore_DuplicatesCollapse(t *testing.T) {
	idx := attrs.NewIndex(
		map[int][]string{1: {"a", "a", "b"}, 2: {"a", "a"}},
		nil,
	)
	s := attrs.NewScorer(idx)
	assert.Equal(t, attrs.ThemeWeight, s.Score(1, 2))
	assert.Equal(t, 2, idx.Themes(1).Len())
}

// TestScorer_NilIndex scores zero instead of panicking.
func TestScorer_NilIndex(t *testing.T) {
	s := attrs.NewScorer(nil)
	assert.Zero(t, s.Score(1, 2))
	require.NotNil(t, s.Index())
}
