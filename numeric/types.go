// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Integer is the set of signed and unsigned integer types.
type Integer = constraints.Integer

// Float is the set of IEEE-754 floating-point types.
type Float = constraints.Float

// Number is any arithmetic component type accepted by vector and matrix.
type Number interface {
	constraints.Integer | constraints.Float
}
