// SPDX-License-Identifier: MIT
// Package: versegraph/palette
//
// palette.go — coordinate → hex color.
//
// Contract:
//   • Assign is pure: same positions ⇒ same colors.
//   • Output colors are upper-case "#RRGGBB".
//   • X is clamped into [MinX, MaxX] before normalising.

package palette

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/versegraph/proximity"
)

// Normalisation window for the X component, matching the value range of the
// sentence-embedding dimensions the coordinates come from.
const (
	MinX = -0.05
	MaxX = 0.05
)

// variation is the maximum per-channel shift.
const variation = 10

// Colors is the base palette, index order is significant.
var Colors = [...]string{
	"#FF5733", // bright orange/red
	"#FFC300", // bright yellow
	"#DAF7A6", // light green
	"#FF33FF", // magenta
	"#33FFF6", // aqua
	"#FF8C00", // dark orange
	"#FF0055", // hot pink
	"#00FF7F", // spring green
	"#00FFFF", // cyan
	"#FFFF00", // yellow
}

// Assign colors every positioned poem.
// Complexity: O(n).
func Assign(positions map[int]proximity.Point) map[int]string {
	out := make(map[int]string, len(positions))
	for id, p := range positions {
		out[id] = ColorFor(id, p)
	}

	return out
}

// ColorFor computes the color of one poem.
func ColorFor(id int, p proximity.Point) string {
	n := Normalize(p.X, MinX, MaxX)
	idx := int(math.Floor(n*float64(len(Colors)))) % len(Colors)

	return Alter(Colors[idx], id)
}

// Normalize maps v from [lo, hi] into [0, 1], clamping first.
// A degenerate window (lo == hi) maps everything to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if lo == hi {
		return 0.5
	}
	c := math.Min(math.Max(v, lo), hi)

	return (c - lo) / (hi - lo)
}

// Alter shifts each channel of hex by a deterministic amount in
// [-variation, variation) derived from seed. Invalid hex input is returned
// unchanged.
func Alter(hex string, seed int) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	r := shift(int(rgb>>16&0xFF), seed, 1)
	g := shift(int(rgb>>8&0xFF), seed, 2)
	b := shift(int(rgb&0xFF), seed, 3)

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// shift applies the channel-k variation and clamps to a byte.
func shift(c, seed, k int) int {
	delta := int(math.Floor((pseudoRandom(seed, k) - 0.5) * variation * 2))
	c += delta
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}

	return c
}

// pseudoRandom is frac(sin(seed+k)·10000), a cheap stable hash in [0, 1).
func pseudoRandom(seed, k int) float64 {
	x := math.Sin(float64(seed+k)) * 10000
	return x - math.Floor(x)
}
