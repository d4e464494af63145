// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/numeric"

// Vector is the method set shared by Vec2, Vec3 and Vec4, with V the
// concrete vector type itself. matrix uses it as the column constraint.
type Vector[T numeric.Number, V any] interface {
	// Dim returns the number of components.
	Dim() int
	// At returns the i-th component or a wrapped ErrOutOfRange.
	At(i int) (T, error)
	Scale(s T) V
	Add(b V) V
	Sub(b V) V
	Neg() V
	Dot(b V) T
}

// Common instantiations.
type (
	Float2  = Vec2[float32]
	Float3  = Vec3[float32]
	Float4  = Vec4[float32]
	Double2 = Vec2[float64]
	Double3 = Vec3[float64]
	Double4 = Vec4[float64]
	Int2    = Vec2[int]
	Int3    = Vec3[int]
	Int4    = Vec4[int]
)

// Compile-time assertions that every arity satisfies Vector.
var (
	_ Vector[float32, Vec2[float32]] = Vec2[float32]{}
	_ Vector[float32, Vec3[float32]] = Vec3[float32]{}
	_ Vector[float32, Vec4[float32]] = Vec4[float32]{}
)

// absDiff returns |a - b| without wrapping for unsigned T.
func absDiff[T numeric.Number](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}
