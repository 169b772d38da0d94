// SPDX-License-Identifier: MIT

// Package embedding derives 3-D poem coordinates from a sentence-embedding
// service.
//
// Every line of a poem is embedded, the line vectors are averaged, and the
// first three dimensions of the mean become the poem's (x, y, z). Poems that
// already have a position are left untouched. A poem whose embedding fails
// for any reason is skipped and logged; one bad poem never aborts a run.
//
// The Embedder interface decouples the algorithm from the transport. An
// OpenAI-compatible client (github.com/sashabaranov/go-openai) is provided;
// any feature-extraction service speaking the /embeddings protocol works by
// pointing Config.BaseURL at it.
package embedding
