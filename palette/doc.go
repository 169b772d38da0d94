// SPDX-License-Identifier: MIT

// Package palette assigns each poem a display color from its embedding
// coordinate. It is independent of graph construction.
//
// The base color is picked from a fixed ten-color palette by the normalised
// X component; each RGB channel is then nudged by at most ±10 using a
// deterministic per-ID variation, so neighbors in X-space read as one family
// without being identical.
package palette
