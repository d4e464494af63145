// SPDX-License-Identifier: MIT

// Package matrix: constructors.
// Arguments are taken in reading order (row by row) so call sites look like
// the matrix they build; storage is column-major.
package matrix

import (
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// MakeMat2x2 constructs the matrix
//
//	a b
//	c d
func MakeMat2x2[T numeric.Number](
	a, b,
	c, d T,
) Mat2[T, vector.Vec2[T]] {
	return Mat2[T, vector.Vec2[T]]{
		X: vector.Vec2[T]{X: a, Y: c}, // Column 0.
		Y: vector.Vec2[T]{X: b, Y: d}, // Column 1.
	}
}

// MakeMat3x3 constructs the matrix
//
//	a b c
//	d e f
//	g h i
func MakeMat3x3[T numeric.Number](
	a, b, c,
	d, e, f,
	g, h, i T,
) Mat3[T, vector.Vec3[T]] {
	return Mat3[T, vector.Vec3[T]]{
		X: vector.Vec3[T]{X: a, Y: d, Z: g}, // Column 0.
		Y: vector.Vec3[T]{X: b, Y: e, Z: h}, // Column 1.
		Z: vector.Vec3[T]{X: c, Y: f, Z: i}, // Column 2.
	}
}

// MakeMat4x4 constructs the matrix
//
//	a b c d
//	e f g h
//	i j k l
//	m n o p
func MakeMat4x4[T numeric.Number](
	a, b, c, d,
	e, f, g, h,
	i, j, k, l,
	m, n, o, p T,
) Mat4[T, vector.Vec4[T]] {
	return Mat4[T, vector.Vec4[T]]{
		X: vector.Vec4[T]{X: a, Y: e, Z: i, W: m}, // Column 0.
		Y: vector.Vec4[T]{X: b, Y: f, Z: j, W: n}, // Column 1.
		Z: vector.Vec4[T]{X: c, Y: g, Z: k, W: o}, // Column 2.
		W: vector.Vec4[T]{X: d, Y: h, Z: l, W: p}, // Column 3.
	}
}

// Identity2x2 returns the 2×2 identity.
func Identity2x2[T numeric.Number]() Mat2[T, vector.Vec2[T]] {
	return MakeMat2x2[T](
		1, 0,
		0, 1,
	)
}

// Identity3x3 returns the 3×3 identity.
func Identity3x3[T numeric.Number]() Mat3[T, vector.Vec3[T]] {
	return MakeMat3x3[T](
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Identity4x4 returns the 4×4 identity.
func Identity4x4[T numeric.Number]() Mat4[T, vector.Vec4[T]] {
	return MakeMat4x4[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}
