// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

const typMat4 = "Mat4"

// Dims returns the shape (rows, cols) = (C.Dim(), 4).
func (m Mat4[T, C]) Dims() (rows, cols int) { return m.X.Dim(), 4 }

// Col returns column j (0-based) or a wrapped ErrOutOfRange.
func (m Mat4[T, C]) Col(j int) (C, error) {
	switch j {
	case 0:
		return m.X, nil
	case 1:
		return m.Y, nil
	case 2:
		return m.Z, nil
	case 3:
		return m.W, nil
	}

	var zero C

	return zero, matErrorf(typMat4, ctxCol, j, ErrOutOfRange)
}

// Row returns row i (0-based) as a 4-vector or a wrapped ErrOutOfRange.
func (m Mat4[T, C]) Row(i int) (vector.Vec4[T], error) {
	if i < 0 || i >= m.X.Dim() {
		return vector.Vec4[T]{}, matErrorf(typMat4, ctxRow, i, ErrOutOfRange)
	}
	x, _ := m.X.At(i)
	y, _ := m.Y.At(i)
	z, _ := m.Z.At(i)
	w, _ := m.W.At(i)

	return vector.Vec4[T]{X: x, Y: y, Z: z, W: w}, nil
}

// Mul returns m·v = X·v.X + Y·v.Y + Z·v.Z + W·v.W.
// For a 4×4 transform and a point (x, y, z, 1) the W column is the translation.
func (m Mat4[T, C]) Mul(v vector.Vec4[T]) C {
	return m.X.Scale(v.X).Add(m.Y.Scale(v.Y)).Add(m.Z.Scale(v.Z)).Add(m.W.Scale(v.W))
}

// MulMat2 returns m·b for a 4×2 right operand.
func (m Mat4[T, C]) MulMat2(b Mat2[T, vector.Vec4[T]]) Mat2[T, C] {
	return Mat2[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y)}
}

// MulMat3 returns m·b for a 4×3 right operand.
func (m Mat4[T, C]) MulMat3(b Mat3[T, vector.Vec4[T]]) Mat3[T, C] {
	return Mat3[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z)}
}

// MulMat4 returns m·b for a 4×4 right operand. Composing transforms reads
// right to left: a.MulMat4(b).Mul(p) == a.Mul(b.Mul(p)).
func (m Mat4[T, C]) MulMat4(b Mat4[T, vector.Vec4[T]]) Mat4[T, C] {
	return Mat4[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z), W: m.Mul(b.W)}
}

// String implements fmt.Stringer, one "[a, b, c, d]" line per row.
func (m Mat4[T, C]) String() string {
	var sb strings.Builder
	for i := 0; i < m.X.Dim(); i++ {
		r, _ := m.Row(i)
		a := r.Array()
		writeRow(&sb, a[:])
	}

	return sb.String()
}
