// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and their context
// wrapper. Tests check them via errors.Is. No exported function panics on
// user-supplied indices.

package matrix

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a row or column index is outside valid bounds.
// Public indexers (Row/Col) MUST return this, not panic.
var ErrOutOfRange = errors.New("matrix: index out of range")

// Method tags used in error wrappers.
const (
	ctxRow = "Row"
	ctxCol = "Col"
)

// matErrorf wraps err with a uniform "<type>.<method>(<index>)" context.
// Stable, human-friendly messages; preserves the sentinel via %w.
func matErrorf(typ, method string, idx int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, idx, err)
}
