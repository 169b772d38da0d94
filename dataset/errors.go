// SPDX-License-Identifier: MIT
package dataset

import "errors"

var (
	// ErrDuplicatePoem indicates two corpus entries share an ID.
	ErrDuplicatePoem = errors.New("dataset: duplicate poem id")

	// ErrInvalidPoem indicates a corpus entry with a non-positive ID.
	ErrInvalidPoem = errors.New("dataset: invalid poem id")
)
