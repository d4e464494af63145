// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

const typMat3 = "Mat3"

// Dims returns the shape (rows, cols) = (C.Dim(), 3).
func (m Mat3[T, C]) Dims() (rows, cols int) { return m.X.Dim(), 3 }

// Col returns column j (0-based) or a wrapped ErrOutOfRange.
func (m Mat3[T, C]) Col(j int) (C, error) {
	switch j {
	case 0:
		return m.X, nil
	case 1:
		return m.Y, nil
	case 2:
		return m.Z, nil
	}

	var zero C

	return zero, matErrorf(typMat3, ctxCol, j, ErrOutOfRange)
}

// Row returns row i (0-based) as a 3-vector: component i of every column.
//
// Implementation:
//   - Stage 1: validate 0 ≤ i < rows; else wrapped ErrOutOfRange.
//   - Stage 2: pick component i out of X, Y, Z in column order.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Mat3[T, C]) Row(i int) (vector.Vec3[T], error) {
	if i < 0 || i >= m.X.Dim() {
		return vector.Vec3[T]{}, matErrorf(typMat3, ctxRow, i, ErrOutOfRange)
	}
	// Columns share C, so the index is valid for all of them.
	x, _ := m.X.At(i)
	y, _ := m.Y.At(i)
	z, _ := m.Z.At(i)

	return vector.Vec3[T]{X: x, Y: y, Z: z}, nil
}

// Mul returns the matrix-vector product m·v = X·v.X + Y·v.Y + Z·v.Z,
// i.e. the linear combination of the columns weighted by v.
// Complexity: O(rows·3).
func (m Mat3[T, C]) Mul(v vector.Vec3[T]) C {
	return m.X.Scale(v.X).Add(m.Y.Scale(v.Y)).Add(m.Z.Scale(v.Z))
}

// MulMat2 returns m·b for a 3×2 right operand: column k of the result is m.Mul(b's column k).
func (m Mat3[T, C]) MulMat2(b Mat2[T, vector.Vec3[T]]) Mat2[T, C] {
	return Mat2[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y)}
}

// MulMat3 returns m·b for a 3×3 right operand.
func (m Mat3[T, C]) MulMat3(b Mat3[T, vector.Vec3[T]]) Mat3[T, C] {
	return Mat3[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z)}
}

// MulMat4 returns m·b for a 3×4 right operand.
func (m Mat3[T, C]) MulMat4(b Mat4[T, vector.Vec3[T]]) Mat4[T, C] {
	return Mat4[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z), W: m.Mul(b.W)}
}

// String implements fmt.Stringer, printing rows top to bottom:
//
//	[1, 2, 3]
//	[4, 5, 6]
//	[7, 8, 9]
func (m Mat3[T, C]) String() string {
	var sb strings.Builder
	for i := 0; i < m.X.Dim(); i++ {
		r, _ := m.Row(i)
		a := r.Array()
		writeRow(&sb, a[:])
	}

	return sb.String()
}
