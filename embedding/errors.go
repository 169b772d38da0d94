// SPDX-License-Identifier: MIT
package embedding

import "errors"

var (
	// ErrNoLines indicates a poem without any text to embed.
	ErrNoLines = errors.New("embedding: poem has no lines")

	// ErrInconsistentDims indicates line vectors of differing length.
	ErrInconsistentDims = errors.New("embedding: inconsistent embedding lengths")

	// ErrTooFewDims indicates vectors shorter than three dimensions.
	ErrTooFewDims = errors.New("embedding: fewer than 3 dimensions")

	// ErrCountMismatch indicates the service returned a different number of
	// vectors than lines were sent.
	ErrCountMismatch = errors.New("embedding: vector count mismatch")

	// ErrEmptyResponse indicates the service returned no vectors.
	ErrEmptyResponse = errors.New("embedding: empty response")

	// ErrUnsupportedProvider indicates an unknown Config.Provider.
	ErrUnsupportedProvider = errors.New("embedding: unsupported provider")
)
