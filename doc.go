// Package linalg is a small, allocation-free toolkit of fixed-size vectors
// and matrices for geometry, graphics and simulation code.
//
// 🚀 What is linalg?
//
//	A generic, zero-state library that brings together:
//		• Vectors: Vec2, Vec3, Vec4 over any integer or float type
//		• Matrices: 2, 3 or 4 columns of any vector type, column-major
//		• Products: matrix × vector, matrix × matrix, shape-checked at compile time
//		• Square root: Newton-Raphson with explicit domain handling
//		• Interop: x/image/math/f32 arrays and gonum Dense matrices
//
// ✨ Why choose linalg?
//
//   - Plain values – every type is a struct of named fields, safe to copy
//   - Checked access – runtime indexing returns wrapped sentinel errors
//   - Pure Go – no cgo, no assembly
//   - Generic – one implementation per width, instantiated for float32,
//     float64, int and friends
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/ Number constraint, per-type limits, Sqrt / SqrtWith
//	vector/  Vec2 / Vec3 / Vec4 with arithmetic, dot, cross, length
//	matrix/  Mat2 / Mat3 / Mat4, constructors, identity, products
//	interop/ conversions to and from f32 and gonum
//
// Quick example:
//
//	a := vector.Double3{X: 0, Y: 0, Z: 0}
//	b := vector.Double3{X: 4, Y: 0, Z: 0}
//	c := vector.Double3{X: 0, Y: 3, Z: 0}
//	n := b.Sub(a).Cross(c.Sub(a)) // (0, 0, 12)
//	n.Length() / 2                 // triangle area: 6
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/linalg
package linalg
