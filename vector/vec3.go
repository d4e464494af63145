// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/numeric"
)

// typVec3 names Vec3 in error context.
const typVec3 = "Vec3"

// Vec3 is a 3-component column vector.
type Vec3[T numeric.Number] struct {
	X, Y, Z T
}

// FromArray3 builds a Vec3 from a component array.
func FromArray3[T numeric.Number](a [3]T) Vec3[T] {
	return Vec3[T]{a[0], a[1], a[2]}
}

// Cast3 converts every component of v to U.
func Cast3[U, T numeric.Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// Dim returns 3.
func (v Vec3[T]) Dim() int { return 3 }

// Array returns the components in order.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// At returns the i-th component (0-based).
// Returns a wrapped ErrOutOfRange when i is outside [0, 3).
// Complexity: O(1).
func (v Vec3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}

	return 0, vecErrorf(typVec3, ctxAt, i, ErrOutOfRange)
}

// Set assigns s to the i-th component (0-based).
// Returns a wrapped ErrOutOfRange when i is outside [0, 3); v is untouched then.
func (v *Vec3[T]) Set(i int, s T) error {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		return vecErrorf(typVec3, ctxSet, i, ErrOutOfRange)
	}

	return nil
}

// Equal reports component-wise equality. Same as v == b.
func (v Vec3[T]) Equal(b Vec3[T]) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// NotEqual is !v.Equal(b).
func (v Vec3[T]) NotEqual(b Vec3[T]) bool { return !v.Equal(b) }

// ApproxEqual reports whether every component differs by at most eps.
// NaN components never compare equal.
func (v Vec3[T]) ApproxEqual(b Vec3[T], eps T) bool {
	return absDiff(v.X, b.X) <= eps && absDiff(v.Y, b.Y) <= eps && absDiff(v.Z, b.Z) <= eps
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Add returns v + b.
func (v Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

// Sub returns v - b.
func (v Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// ScaleAssign sets *v = v * s and returns the new value.
func (v *Vec3[T]) ScaleAssign(s T) Vec3[T] {
	*v = v.Scale(s)

	return *v
}

// AddAssign sets *v = v + b and returns the new value.
func (v *Vec3[T]) AddAssign(b Vec3[T]) Vec3[T] {
	*v = v.Add(b)

	return *v
}

// SubAssign sets *v = v - b and returns the new value.
func (v *Vec3[T]) SubAssign(b Vec3[T]) Vec3[T] {
	*v = v.Sub(b)

	return *v
}

// Dot returns the dot product v · b.
func (v Vec3[T]) Dot(b Vec3[T]) T {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the right-handed cross product v × b.
// The result is orthogonal to both operands and Cross(b, a) == -Cross(a, b).
func (v Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

// Length2 returns the squared length v · v.
func (v Vec3[T]) Length2() T { return v.Dot(v) }

// Length returns |v| via numeric.Sqrt.
func (v Vec3[T]) Length() T { return numeric.Sqrt(v.Length2()) }

// Distance2 returns the squared distance |b - v|².
func (v Vec3[T]) Distance2(b Vec3[T]) T { return b.Sub(v).Length2() }

// Distance returns |b - v|.
func (v Vec3[T]) Distance(b Vec3[T]) T { return b.Sub(v).Length() }

// Normalized returns v * (1 / |v|). A float zero vector yields NaN
// components. For integer T, |v| is the truncated integer root and 1/|v|
// truncates to 0 whenever |v| >= 2, so such vectors normalize to the zero
// vector; vectors with Length2 in 1..3 have |v| == 1 and come back
// unchanged. An integer zero vector panics on division by zero.
func (v Vec3[T]) Normalized() Vec3[T] {
	return v.Scale(1 / v.Length())
}

// String implements fmt.Stringer, e.g. "(1, 2, 3)".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
