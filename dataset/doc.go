// SPDX-License-Identifier: MIT

// Package dataset loads poem corpora and persists the artefacts derived from
// them: embedding positions, graph connections and display colors.
//
// The corpus is YAML; every derived artefact is indented JSON keyed by poem
// ID. Writes go through a temporary file in the target directory followed by
// a rename, so readers never observe a half-written file.
package dataset
