// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

const typMat2 = "Mat2"

// Dims returns the shape (rows, cols) = (C.Dim(), 2).
func (m Mat2[T, C]) Dims() (rows, cols int) { return m.X.Dim(), 2 }

// Col returns column j (0-based) or a wrapped ErrOutOfRange.
func (m Mat2[T, C]) Col(j int) (C, error) {
	switch j {
	case 0:
		return m.X, nil
	case 1:
		return m.Y, nil
	}

	var zero C

	return zero, matErrorf(typMat2, ctxCol, j, ErrOutOfRange)
}

// Row returns row i (0-based) as a 2-vector or a wrapped ErrOutOfRange.
func (m Mat2[T, C]) Row(i int) (vector.Vec2[T], error) {
	if i < 0 || i >= m.X.Dim() {
		return vector.Vec2[T]{}, matErrorf(typMat2, ctxRow, i, ErrOutOfRange)
	}
	x, _ := m.X.At(i)
	y, _ := m.Y.At(i)

	return vector.Vec2[T]{X: x, Y: y}, nil
}

// Mul returns m·v = X·v.X + Y·v.Y.
func (m Mat2[T, C]) Mul(v vector.Vec2[T]) C {
	return m.X.Scale(v.X).Add(m.Y.Scale(v.Y))
}

// MulMat2 returns m·b for a 2×2 right operand.
func (m Mat2[T, C]) MulMat2(b Mat2[T, vector.Vec2[T]]) Mat2[T, C] {
	return Mat2[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y)}
}

// MulMat3 returns m·b for a 2×3 right operand.
func (m Mat2[T, C]) MulMat3(b Mat3[T, vector.Vec2[T]]) Mat3[T, C] {
	return Mat3[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z)}
}

// MulMat4 returns m·b for a 2×4 right operand.
func (m Mat2[T, C]) MulMat4(b Mat4[T, vector.Vec2[T]]) Mat4[T, C] {
	return Mat4[T, C]{X: m.Mul(b.X), Y: m.Mul(b.Y), Z: m.Mul(b.Z), W: m.Mul(b.W)}
}

// String implements fmt.Stringer, one "[a, b]" line per row.
func (m Mat2[T, C]) String() string {
	var sb strings.Builder
	for i := 0; i < m.X.Dim(); i++ {
		r, _ := m.Row(i)
		a := r.Array()
		writeRow(&sb, a[:])
	}

	return sb.String()
}
