// SPDX-License-Identifier: MIT

// Package interop converts linalg vectors and matrices to and from the
// representations used by other Go numeric libraries.
//
// Two targets are supported:
//
//	golang.org/x/image/math/f32  float32 arrays; matrices are row-major,
//	                             m[N*r+c] is row r, column c.
//	gonum.org/v1/gonum/mat       *mat.Dense, float64, any shape.
//
// Conversions copy values and never alias storage. Conversions to f32 are
// total. Conversions from a gonum matrix check the shape first and return a
// wrapped ErrShape on mismatch:
//
//	m, err := interop.FromDense3x3(d)
//	if errors.Is(err, interop.ErrShape) { ... }
package interop
