// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

const (
	fnFromDense2x2 = "FromDense2x2"
	fnFromDense3x3 = "FromDense3x3"
	fnFromDense4x4 = "FromDense4x4"
)

// toDense copies rows×cols elements from at into a fresh *mat.Dense.
//
// Complexity:
//   - Time O(rows·cols), Space O(rows·cols).
func toDense[T numeric.Number](rows, cols int, at func(i, j int) T) *mat.Dense {
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, numeric.Cast[float64](at(i, j)))
		}
	}

	return mat.NewDense(rows, cols, data)
}

// Dense2x2 copies m into a 2×2 gonum Dense.
func Dense2x2[T numeric.Number](m matrix.Mat2[T, vector.Vec2[T]]) *mat.Dense {
	return toDense(2, 2, func(i, j int) T {
		r, _ := m.Row(i)
		v, _ := r.At(j)
		return v
	})
}

// Dense3x3 copies m into a 3×3 gonum Dense.
func Dense3x3[T numeric.Number](m matrix.Mat3[T, vector.Vec3[T]]) *mat.Dense {
	return toDense(3, 3, func(i, j int) T {
		r, _ := m.Row(i)
		v, _ := r.At(j)
		return v
	})
}

// Dense4x4 copies m into a 4×4 gonum Dense.
func Dense4x4[T numeric.Number](m matrix.Mat4[T, vector.Vec4[T]]) *mat.Dense {
	return toDense(4, 4, func(i, j int) T {
		r, _ := m.Row(i)
		v, _ := r.At(j)
		return v
	})
}

// FromDense2x2 copies a 2×2 gonum matrix. Any other shape yields a wrapped
// ErrShape.
func FromDense2x2(d mat.Matrix) (matrix.Double2x2, error) {
	if r, c := d.Dims(); r != 2 || c != 2 {
		return matrix.Double2x2{}, shapeErrorf(fnFromDense2x2, r, c)
	}

	return matrix.MakeMat2x2(
		d.At(0, 0), d.At(0, 1),
		d.At(1, 0), d.At(1, 1),
	), nil
}

// FromDense3x3 copies a 3×3 gonum matrix. Any other shape yields a wrapped
// ErrShape.
func FromDense3x3(d mat.Matrix) (matrix.Double3x3, error) {
	if r, c := d.Dims(); r != 3 || c != 3 {
		return matrix.Double3x3{}, shapeErrorf(fnFromDense3x3, r, c)
	}

	return matrix.MakeMat3x3(
		d.At(0, 0), d.At(0, 1), d.At(0, 2),
		d.At(1, 0), d.At(1, 1), d.At(1, 2),
		d.At(2, 0), d.At(2, 1), d.At(2, 2),
	), nil
}

// FromDense4x4 copies a 4×4 gonum matrix. Any other shape yields a wrapped
// ErrShape.
//
// Implementation:
//   - Stage 1: reject any shape other than 4×4.
//   - Stage 2: read element (r, c) into column c, component r.
func FromDense4x4(d mat.Matrix) (matrix.Double4x4, error) {
	if r, c := d.Dims(); r != 4 || c != 4 {
		return matrix.Double4x4{}, shapeErrorf(fnFromDense4x4, r, c)
	}
	col := func(c int) vector.Double4 {
		return vector.Double4{X: d.At(0, c), Y: d.At(1, c), Z: d.At(2, c), W: d.At(3, c)}
	}

	return matrix.Double4x4{X: col(0), Y: col(1), Z: col(2), W: col(3)}, nil
}
