// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a source matrix does not have the shape of the
// requested fixed-size destination.
var ErrShape = errors.New("interop: shape mismatch")

// shapeErrorf wraps ErrShape with "<fn>(<rows>x<cols>)" context.
func shapeErrorf(fn string, rows, cols int) error {
	return fmt.Errorf("%s(%dx%d): %w", fn, rows, cols, ErrShape)
}
