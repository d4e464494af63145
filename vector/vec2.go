// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

const typVec2 = "Vec2"

// Vec2 is a 2-component column vector.
type Vec2[T numeric.Number] struct {
	X, Y T
}

// FromArray2 builds a Vec2 from a component array.
func FromArray2[T numeric.Number](a [2]T) Vec2[T] {
	return Vec2[T]{a[0], a[1]}
}

// Cast2 converts every component of v to U.
func Cast2[U, T numeric.Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}

// Dim returns 2.
func (v Vec2[T]) Dim() int { return 2 }

// Array returns the components in order.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// At returns the i-th component (0-based) or a wrapped ErrOutOfRange.
func (v Vec2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}

	return 0, vecErrorf(typVec2, ctxAt, i, ErrOutOfRange)
}

// Set assigns s to the i-th component (0-based) or returns a wrapped ErrOutOfRange.
func (v *Vec2[T]) Set(i int, s T) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	default:
		return vecErrorf(typVec2, ctxSet, i, ErrOutOfRange)
	}

	return nil
}

// Equal reports component-wise equality. Same as v == b.
func (v Vec2[T]) Equal(b Vec2[T]) bool { return v.X == b.X && v.Y == b.Y }

// NotEqual is !v.Equal(b).
func (v Vec2[T]) NotEqual(b Vec2[T]) bool { return !v.Equal(b) }

// ApproxEqual reports whether every component differs by at most eps.
// NaN components never compare equal.
func (v Vec2[T]) ApproxEqual(b Vec2[T], eps T) bool {
	return absDiff(v.X, b.X) <= eps && absDiff(v.Y, b.Y) <= eps
}

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Add returns v + b.
func (v Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{v.X + b.X, v.Y + b.Y} }

// Sub returns v - b.
func (v Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{v.X - b.X, v.Y - b.Y} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// ScaleAssign sets *v = v * s and returns the new value.
func (v *Vec2[T]) ScaleAssign(s T) Vec2[T] {
	*v = v.Scale(s)

	return *v
}

// AddAssign sets *v = v + b and returns the new value.
func (v *Vec2[T]) AddAssign(b Vec2[T]) Vec2[T] {
	*v = v.Add(b)

	return *v
}

// SubAssign sets *v = v - b and returns the new value.
func (v *Vec2[T]) SubAssign(b Vec2[T]) Vec2[T] {
	*v = v.Sub(b)

	return *v
}

// Dot returns the dot product v · b.
func (v Vec2[T]) Dot(b Vec2[T]) T { return v.X*b.X + v.Y*b.Y }

// Cross returns the scalar 2D cross product v.X*b.Y - v.Y*b.X: the Z
// component of the 3D cross product of (v, 0) and (b, 0). Positive when b
// lies counter-clockwise of v.
func (v Vec2[T]) Cross(b Vec2[T]) T { return v.X*b.Y - v.Y*b.X }

// Length2 returns the squared length v · v.
func (v Vec2[T]) Length2() T { return v.Dot(v) }

// Length returns |v| via numeric.Sqrt.
func (v Vec2[T]) Length() T { return numeric.Sqrt(v.Length2()) }

// Distance2 returns the squared distance |b - v|².
func (v Vec2[T]) Distance2(b Vec2[T]) T { return b.Sub(v).Length2() }

// Distance returns |b - v|.
func (v Vec2[T]) Distance(b Vec2[T]) T { return b.Sub(v).Length() }

// Normalized returns v * (1 / |v|). A float zero vector yields NaN
// components. For integer T, |v| is the truncated integer root and 1/|v|
// truncates to 0 whenever |v| >= 2, so such vectors normalize to the zero
// vector; vectors with Length2 in 1..3 have |v| == 1 and come back
// unchanged. An integer zero vector panics on division by zero.
func (v Vec2[T]) Normalized() Vec2[T] { return v.Scale(1 / v.Length()) }

// String implements fmt.Stringer, e.g. "(1, 2)".
func (v Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }
