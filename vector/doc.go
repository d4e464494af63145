// SPDX-License-Identifier: MIT

// Package vector provides small, fixed-length vector value types.
//
// 🚀 What is in here?
//
//	Vec2[T], Vec3[T], Vec4[T] hold exactly 2, 3 or 4 components of any
//	numeric.Number type, named X, Y, Z, W, stored contiguously with no
//	padding (unsafe.Sizeof(Vec3[float32]{}) == 12). They are plain values:
//	copy them, compare them with ==, put them in maps.
//
// ✨ Operations (methods on every arity unless noted):
//   - Equal / NotEqual / ApproxEqual
//   - Scale, Add, Sub, Neg and the in-place ScaleAssign, AddAssign, SubAssign
//   - At / Set by runtime index (checked: ErrOutOfRange, never a panic)
//   - Dot, Length2, Length, Distance2, Distance, Normalized
//   - Cross: scalar "2D cross" on Vec2, the usual vector on Vec3, absent on Vec4
//
// Shapes are part of the type, so adding a Vec2 to a Vec3 does not compile.
// Component types must match as well; convert explicitly with Cast2/3/4.
//
// Numeric edge cases are not guarded: Normalized of a zero vector yields
// Inf/NaN components, exactly like the scalar expression v * (1/|v|).
//
//	a := vector.Vec3[float32]{X: 1, Y: 2, Z: 3}
//	b := vector.Vec3[float32]{X: 4, Y: 5, Z: 6}
//	n := a.Cross(b).Normalized()
package vector
