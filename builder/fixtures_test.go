// SPDX-License-Identifier: MIT
// Package builder_test contains shared fixtures for the build tests.
package builder_test

import (
	"math/rand"

	"github.com/katalvlaran/versegraph/proximity"
)

// fixtureSeed pins the synthetic coordinates.
const fixtureSeed = 1735

// corpus is the 25-poem tag table the web view ships with, plus
// deterministic coordinates in the embedding value range.
type corpus struct {
	ids    []int
	coords map[int]proximity.Point
	themes map[int][]string
	motifs map[int][]string
}

func poemCorpus() corpus {
	themes := map[int][]string{
		1: {"Love", "Death", "Time", "Heaven", "Earth", "Fate"},
		2: {"Hope", "Serenity", "Beauty", "Renewal"},
		3: {"Mortality", "Death", "Time", "Inspiration", "Destiny", "Change"},
		4: {"Sea", "Eternity", "Hope"},
		5: {"Birds", "Loss", "Renewal", "Faith"},
		6: {"Seasons", "Change", "Time", "Mystery"},
		7: {"Immortality", "Transformation", "Faith", "Resurrection"},
		8: {"Words", "Power", "Time", "Mortality", "Heroism", "Expression"},
		9: {"Fear", "Mystery", "Journey", "Dark"},
		10: {"Doubt", "Time", "Mystery", "Identity"},
		11: {"Secrecy", "Greed", "Mystery", "Risk"},
		12: {"Seasons", "Beauty", "Simplicity"},
		13: {"Sleep", "Death", "Eternity", "Morning", "Transcendence"},
		14: {"Family", "Love", "Memory", "Time", "Identity"},
		15: {"Change", "Wonder", "Serenity"},
		16: {"Friendship", "Loss"},
		17: {"Surprise", "Wonder", "Emotion"},
		18: {"Angels", "Faith", "Transience", "Farewell"},
		19: {"Beauty", "Renewal", "Joy"},
		20: {"Trust", "Doubt", "Hope"},
		21: {"Loss", "Chance", "Time"},
		22: {"Creation", "Seasons", "Renewal", "Joy"},
		23: {"Memory", "Loss", "Friendship", "Regret", "Fate"},
		24: {"Mystery", "Wonder", "Dreams"},
		25: {"Memory", "Love", "Transformation"},
	}
	motifs := map[int][]string{
		1: {"Bee", "Garden", "Storm"},
		2: {"Garden", "Bee"},
		3: {"Bee", "Stars", "Moonlight"},
		4: {"Storm", "Path"},
		5: {"Birdsong", "Butterfly"},
		6: {"Leaves", "Path"},
		7: {"Birdsong", "Snow", "Stars"},
		8: {"Sword", "Shadow"},
		9: {"Road", "Wolf"},
		10: {"Wheel"},
		11: {"Treasure", "Snake"},
		12: {"Leaves"},
		13: {"Veil"},
		14: {"Bee", "Butterfly"},
		15: {"Color", "Door"},
		16: {"Cup"},
		17: {"Garden"},
		18: {"Flowers", "Butterfly"},
		19: {"Bee", "Breeze", "Flowers"},
		20: {"Butterfly", "Bee"},
		21: {"Dice"},
		22: {"Flowers"},
		23: {"Robin", "Stars"},
		24: {"Dance", "Stars"},
		25: {"Tree"},
	}

	ids := make([]int, 0, len(themes))
	for id := 1; id <= len(themes); id++ {
		ids = append(ids, id)
	}

	return corpus{ids: ids, coords: syntheticCoords(ids, fixtureSeed), themes: themes, motifs: motifs}
}

// syntheticCoords scatters ids in [-0.05, 0.05]³ with a seeded RNG.
func syntheticCoords(ids []int, seed int64) map[int]proximity.Point {
	rng := rand.New(rand.NewSource(seed))
	out := make(map[int]proximity.Point, len(ids))
	for _, id := range ids {
		out[id] = proximity.Point{
			X: rng.Float64()*0.1 - 0.05,
			Y: rng.Float64()*0.1 - 0.05,
			Z: rng.Float64()*0.1 - 0.05,
		}
	}

	return out
}

// randomTags draws up to maxTags labels from a pool of poolSize per id.
func randomTags(ids []int, rng *rand.Rand, poolSize, maxTags int) map[int][]string {
	out := make(map[int][]string, len(ids))
	for _, id := range ids {
		n := rng.Intn(maxTags + 1)
		labels := make([]string, 0, n)
		for i := 0; i < n; i++ {
			labels = append(labels, string(rune('a'+rng.Intn(poolSize))))
		}
		out[id] = labels
	}

	return out
}
