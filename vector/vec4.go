// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

const typVec4 = "Vec4"

// Vec4 is a 4-component column vector, typically homogeneous coordinates
// (W = 1 for points, W = 0 for directions). It has no Cross.
type Vec4[T numeric.Number] struct {
	X, Y, Z, W T
}

// FromArray4 builds a Vec4 from a component array.
func FromArray4[T numeric.Number](a [4]T) Vec4[T] {
	return Vec4[T]{a[0], a[1], a[2], a[3]}
}

// Cast4 converts every component of v to U.
func Cast4[U, T numeric.Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

// Dim returns 4.
func (v Vec4[T]) Dim() int { return 4 }

// Array returns the components in order.
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// At returns the i-th component (0-based) or a wrapped ErrOutOfRange.
func (v Vec4[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}

	return 0, vecErrorf(typVec4, ctxAt, i, ErrOutOfRange)
}

// Set assigns s to the i-th component (0-based) or returns a wrapped ErrOutOfRange.
func (v *Vec4[T]) Set(i int, s T) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		return vecErrorf(typVec4, ctxSet, i, ErrOutOfRange)
	}

	return nil
}

// Equal reports component-wise equality. Same as v == b.
func (v Vec4[T]) Equal(b Vec4[T]) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z && v.W == b.W
}

// NotEqual is !v.Equal(b).
func (v Vec4[T]) NotEqual(b Vec4[T]) bool { return !v.Equal(b) }

// ApproxEqual reports whether every component differs by at most eps.
// NaN components never compare equal.
func (v Vec4[T]) ApproxEqual(b Vec4[T], eps T) bool {
	return absDiff(v.X, b.X) <= eps && absDiff(v.Y, b.Y) <= eps &&
		absDiff(v.Z, b.Z) <= eps && absDiff(v.W, b.W) <= eps
}

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Add returns v + b.
func (v Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

// Sub returns v - b.
func (v Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// ScaleAssign sets *v = v * s and returns the new value.
func (v *Vec4[T]) ScaleAssign(s T) Vec4[T] {
	*v = v.Scale(s)

	return *v
}

// AddAssign sets *v = v + b and returns the new value.
func (v *Vec4[T]) AddAssign(b Vec4[T]) Vec4[T] {
	*v = v.Add(b)

	return *v
}

// SubAssign sets *v = v - b and returns the new value.
func (v *Vec4[T]) SubAssign(b Vec4[T]) Vec4[T] {
	*v = v.Sub(b)

	return *v
}

// Dot returns the dot product v · b over all four components (W included).
func (v Vec4[T]) Dot(b Vec4[T]) T {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W
}

// Length2 returns the squared length v · v.
func (v Vec4[T]) Length2() T { return v.Dot(v) }

// Length returns |v| via numeric.Sqrt.
func (v Vec4[T]) Length() T { return numeric.Sqrt(v.Length2()) }

// Distance2 returns the squared distance |b - v|².
func (v Vec4[T]) Distance2(b Vec4[T]) T { return b.Sub(v).Length2() }

// Distance returns |b - v|.
func (v Vec4[T]) Distance(b Vec4[T]) T { return b.Sub(v).Length() }

// Normalized returns v * (1 / |v|). A float zero vector yields NaN
// components. For integer T, |v| is the truncated integer root and 1/|v|
// truncates to 0 whenever |v| >= 2, so such vectors normalize to the zero
// vector; vectors with Length2 in 1..3 have |v| == 1 and come back
// unchanged. An integer zero vector panics on division by zero.
func (v Vec4[T]) Normalized() Vec4[T] {
	return v.Scale(1 / v.Length())
}

// String implements fmt.Stringer, e.g. "(1, 2, 3, 4)".
func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
