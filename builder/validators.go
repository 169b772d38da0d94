// SPDX-License-Identifier: MIT
// Package builder provides validation helpers for Build parameters.
package builder

import "fmt"

// validateConstraints enforces 0 ≤ kMin ≤ kMax.
// Complexity: O(1).
func validateConstraints(method string, kMin, kMax int) error {
	if kMin < 0 || kMax < 0 {
		return fmt.Errorf("%s: bounds must be ≥ 0, got kMin=%d kMax=%d: %w",
			method, kMin, kMax, ErrInvalidConstraints)
	}
	if kMin > kMax {
		return fmt.Errorf("%s: kMin=%d > kMax=%d: %w",
			method, kMin, kMax, ErrInvalidConstraints)
	}

	return nil
}
