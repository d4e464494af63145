// SPDX-License-Identifier: MIT

// Package matrix offers small, fixed-size, column-major matrices built from
// vector columns.
//
// The matrix package provides:
//
//   - Mat2[T, C], Mat3[T, C], Mat4[T, C]: 2, 3 or 4 columns of the column
//     vector type C (vector.Vec2[T], Vec3[T] or Vec4[T]). The number of rows
//     is C's dimension, so Mat4[float32, vector.Vec3[float32]] is a 3×4
//     matrix mapping 4-vectors to 3-vectors.
//   - MakeMat2x2 / MakeMat3x3 / MakeMat4x4: take entries in reading order
//     (row by row) and store them column by column.
//   - Identity2x2 / Identity3x3 / Identity4x4.
//   - Row / Col: runtime-indexed extraction, checked (ErrOutOfRange).
//   - Mul (matrix × vector) as a linear combination of the columns, and
//     MulMat2 / MulMat3 / MulMat4 (matrix × matrix) applying Mul to every
//     column of the right operand.
//
// Shapes live in the types: an inner-dimension mismatch is a compile error,
// never a run-time one. All values are plain structs and arithmetic never
// allocates.
//
//	m := matrix.MakeMat3x3[float32](
//		1, 2, 3,
//		4, 5, 6,
//		7, 8, 9,
//	)
//	m.Mul(vector.Float3{X: 1}) // (1, 4, 7): the first column
package matrix
