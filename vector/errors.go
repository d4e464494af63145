// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Match with errors.Is; the returned errors carry the receiver type, method
// and index as context.

package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a component index is outside [0, Dim()).
// Public indexers (At/Set) return it wrapped, they never panic.
var ErrOutOfRange = errors.New("vector: index out of range")

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// vecErrorf wraps err with "<type>.<method>(<index>)" context.
func vecErrorf(typ, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, i, err)
}
