// SPDX-License-Identifier: MIT

package interop

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// F32Vec2 copies v into an f32.Vec2.
func F32Vec2(v vector.Float2) f32.Vec2 { return f32.Vec2(v.Array()) }

// F32Vec3 copies v into an f32.Vec3.
func F32Vec3(v vector.Float3) f32.Vec3 { return f32.Vec3(v.Array()) }

// F32Vec4 copies v into an f32.Vec4.
func F32Vec4(v vector.Float4) f32.Vec4 { return f32.Vec4(v.Array()) }

// FromF32Vec2 is the inverse of F32Vec2.
func FromF32Vec2(a f32.Vec2) vector.Float2 { return vector.FromArray2([2]float32(a)) }

// FromF32Vec3 is the inverse of F32Vec3.
func FromF32Vec3(a f32.Vec3) vector.Float3 { return vector.FromArray3([3]float32(a)) }

// FromF32Vec4 is the inverse of F32Vec4.
func FromF32Vec4(a f32.Vec4) vector.Float4 { return vector.FromArray4([4]float32(a)) }

// F32Mat3 writes m in f32's row-major layout.
//
// Implementation:
//   - Stage 1: read each row through Row (indices are always in range).
//   - Stage 2: place row r at offsets 3r..3r+2.
func F32Mat3(m matrix.Float3x3) f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		row, _ := m.Row(r)
		a := row.Array()
		copy(out[3*r:3*r+3], a[:])
	}

	return out
}

// F32Mat4 writes m in f32's row-major layout.
func F32Mat4(m matrix.Float4x4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		row, _ := m.Row(r)
		a := row.Array()
		copy(out[4*r:4*r+4], a[:])
	}

	return out
}

// FromF32Mat3 is the inverse of F32Mat3.
func FromF32Mat3(a f32.Mat3) matrix.Float3x3 {
	return matrix.MakeMat3x3(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		a[6], a[7], a[8],
	)
}

// FromF32Mat4 is the inverse of F32Mat4.
func FromF32Mat4(a f32.Mat4) matrix.Float4x4 {
	return matrix.MakeMat4x4(
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	)
}
