// SPDX-License-Identifier: MIT

// Package versegraph builds a relationship graph over a corpus of poems.
//
// 🚀 What is versegraph?
//
//	A small, deterministic pipeline that links poems along two axes:
//		• Shared tags: themes weigh 3, motifs weigh 2
//		• Spatial proximity: nearest neighbors in a 3-D embedding space
//
//	and then bounds every poem's degree to [kMin, kMax], restoring symmetric
//	edges wherever the ceiling allows.
//
// Packages:
//
//	attrs/      — tag sets and the pairwise similarity score
//	proximity/  — Euclidean nearest-neighbor ranking over 3-D points
//	adjacency/  — mutable neighbor sets and the immutable Snapshot
//	builder/    — the five-pass Build and its Report
//	embedding/  — coordinates from an OpenAI-compatible embeddings service
//	palette/    — display colors from coordinates
//	dataset/    — YAML corpus and JSON artefact persistence
//	cmd/versegraph — the CLI (coordinates, connect, colors)
//
// Quick start:
//
//	res, err := builder.Build(ids, coords, themes, motifs,
//		builder.WithConstraints(2, 15))
//	if err != nil { … }
//	fmt.Println(res.Graph.Edges(), res.Report.UnderFloor)
//
// Install:
//
//	go get github.com/katalvlaran/versegraph
package versegraph
