// SPDX-License-Identifier: MIT

// Package matrix: matrix types and common instantiations.
// Each MatN holds N columns (column 0 first) of a vector type C; the number
// of rows M is C.Dim(). Column fields are named after the basis vector they
// are the image of: X = M·e₀, Y = M·e₁, Z = M·e₂, W = M·e₃.
package matrix

import (
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// Mat2 is an M×2 matrix stored as two column vectors.
type Mat2[T numeric.Number, C vector.Vector[T, C]] struct {
	X C // Column 0.
	Y C // Column 1.
}

// Mat3 is an M×3 matrix stored as three column vectors.
type Mat3[T numeric.Number, C vector.Vector[T, C]] struct {
	X C // Column 0.
	Y C // Column 1.
	Z C // Column 2.
}

// Mat4 is an M×4 matrix stored as four column vectors.
type Mat4[T numeric.Number, C vector.Vector[T, C]] struct {
	X C // Column 0.
	Y C // Column 1.
	Z C // Column 2.
	W C // Column 3.
}

// Square instantiations, named RowsxCols.
type (
	Float2x2  = Mat2[float32, vector.Vec2[float32]]
	Float3x3  = Mat3[float32, vector.Vec3[float32]]
	Float4x4  = Mat4[float32, vector.Vec4[float32]]
	Double2x2 = Mat2[float64, vector.Vec2[float64]]
	Double3x3 = Mat3[float64, vector.Vec3[float64]]
	Double4x4 = Mat4[float64, vector.Vec4[float64]]
)

// Rectangular instantiations used for affine maps.
type (
	// Float2x3 maps homogeneous 2D points (x, y, 1) to 2D points.
	Float2x3 = Mat3[float32, vector.Vec2[float32]]
	// Float3x4 maps homogeneous 3D points (x, y, z, 1) to 3D points.
	Float3x4 = Mat4[float32, vector.Vec3[float32]]
)
