// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

func TestConstruction(t *testing.T) {
	t.Parallel()

	assert.True(t, a2.X == 1 && a2.Y == 2)
	assert.True(t, a3.X == 1 && a3.Y == 2 && a3.Z == 3)
	assert.True(t, a4.X == 1 && a4.Y == 2 && a4.Z == 3 && a4.W == 4)

	assert.Equal(t, a3, vector.FromArray3([3]float32{1, 2, 3}))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, a4.Array())
	assert.Equal(t, a2, vector.FromArray2(a2.Array()))
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var z2 vector.Float2
	var z3 vector.Float3
	var z4 vector.Float4
	assert.True(t, z2.X == 0 && z2.Y == 0)
	assert.True(t, z3.X == 0 && z3.Y == 0 && z3.Z == 0)
	assert.True(t, z4.X == 0 && z4.Y == 0 && z4.Z == 0 && z4.W == 0)
}

func TestDim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, a2.Dim())
	assert.Equal(t, 3, a3.Dim())
	assert.Equal(t, 4, a4.Dim())
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, a2.Equal(a2) && !a2.Equal(b2))
	assert.True(t, a3.Equal(a3) && !a3.Equal(b3))
	assert.True(t, a4.Equal(a4) && !a4.Equal(b4))

	assert.True(t, a2.NotEqual(b2) && !a2.NotEqual(a2))
	assert.True(t, a3.NotEqual(b3) && !a3.NotEqual(a3))
	assert.True(t, a4.NotEqual(b4) && !a4.NotEqual(a4))

	// A single differing component is enough.
	assert.False(t, a4.Equal(vector.Float4{X: 1, Y: 2, Z: 3, W: 5}))
	assert.False(t, a3.Equal(vector.Float3{X: 1, Y: 2, Z: 4}))
	assert.False(t, a2.Equal(vector.Float2{X: 0, Y: 2}))

	// Built-in == agrees with Equal.
	assert.Equal(t, a3 == b3, a3.Equal(b3))
	assert.Equal(t, a3 == vector.FromArray3(a3.Array()), a3.Equal(a3))
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	near := vector.Double3{X: 1 + 1e-10, Y: 2, Z: 3 - 1e-10}
	assert.True(t, vector.Double3{X: 1, Y: 2, Z: 3}.ApproxEqual(near, 1e-9))
	assert.False(t, vector.Double3{X: 1, Y: 2, Z: 3}.ApproxEqual(near, 1e-11))

	// Unsigned components must not wrap when b < a.
	u := vector.Vec2[uint8]{X: 10, Y: 3}
	assert.True(t, u.ApproxEqual(vector.Vec2[uint8]{X: 9, Y: 4}, 1))
	assert.False(t, u.ApproxEqual(vector.Vec2[uint8]{X: 7, Y: 3}, 2))

	// A NaN component fails every comparison, on either side and at any eps.
	nan := math.NaN()
	withNaN := vector.Double3{X: 1, Y: nan, Z: 3}
	assert.False(t, withNaN.ApproxEqual(vector.Double3{X: 1, Y: 2, Z: 3}, math.Inf(1)))
	assert.False(t, vector.Double3{X: 1, Y: 2, Z: 3}.ApproxEqual(withNaN, math.Inf(1)))
	assert.False(t, withNaN.ApproxEqual(withNaN, 1))
	assert.False(t, vector.Double2{X: nan}.ApproxEqual(vector.Double2{}, 1))
	assert.False(t, vector.Double4{W: nan}.ApproxEqual(vector.Double4{}, 1))
}

func TestScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Float2{X: 2, Y: 4}, a2.Scale(2))
	assert.Equal(t, vector.Float3{X: 2, Y: 4, Z: 6}, a3.Scale(2))
	assert.Equal(t, vector.Float4{X: 2, Y: 4, Z: 6, W: 8}, a4.Scale(2))
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Float2{X: 4, Y: 6}, a2.Add(b2))
	assert.Equal(t, vector.Float3{X: 5, Y: 7, Z: 9}, a3.Add(b3))
	assert.Equal(t, vector.Float4{X: 6, Y: 8, Z: 10, W: 12}, a4.Add(b4))

	assert.Equal(t, vector.Float2{X: -2, Y: -2}, a2.Sub(b2))
	assert.Equal(t, vector.Float3{X: -3, Y: -3, Z: -3}, a3.Sub(b3))
	assert.Equal(t, vector.Float4{X: -4, Y: -4, Z: -4, W: -4}, a4.Sub(b4))
}

func TestNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Float2{X: -1, Y: -2}, a2.Neg())
	assert.Equal(t, vector.Float3{X: -1, Y: -2, Z: -3}, a3.Neg())
	assert.Equal(t, vector.Float4{X: -1, Y: -2, Z: -3, W: -4}, a4.Neg())
}

func TestScaleAssign(t *testing.T) {
	t.Parallel()

	v2, v3, v4 := a2, a3, a4
	v2.ScaleAssign(2)
	v3.ScaleAssign(2)
	v4.ScaleAssign(2)
	assert.Equal(t, vector.Float2{X: 2, Y: 4}, v2)
	assert.Equal(t, vector.Float3{X: 2, Y: 4, Z: 6}, v3)
	assert.Equal(t, vector.Float4{X: 2, Y: 4, Z: 6, W: 8}, v4)
	// Fixtures are values; the copies above did not alias them.
	assert.Equal(t, vector.Float2{X: 1, Y: 2}, a2)
}

func TestAddAssign_MixedComponentTypes(t *testing.T) {
	t.Parallel()

	v2, v3, v4 := a2, a3, a4
	v2.AddAssign(vector.Cast2[float32](vector.Int2{X: 2, Y: 2}))
	v3.AddAssign(vector.Cast3[float32](vector.Int3{X: 2, Y: 2, Z: 2}))
	v4.AddAssign(vector.Cast4[float32](vector.Int4{X: 2, Y: 2, Z: 2, W: 2}))
	assert.Equal(t, vector.Float2{X: 3, Y: 4}, v2)
	assert.Equal(t, vector.Float3{X: 3, Y: 4, Z: 5}, v3)
	assert.Equal(t, vector.Float4{X: 3, Y: 4, Z: 5, W: 6}, v4)
}

func TestSubAssign_MixedComponentTypes(t *testing.T) {
	t.Parallel()

	v2, v3, v4 := a2, a3, a4
	v2.SubAssign(vector.Cast2[float32](vector.Int2{X: 2, Y: 2}))
	v3.SubAssign(vector.Cast3[float32](vector.Int3{X: 2, Y: 2, Z: 2}))
	v4.SubAssign(vector.Cast4[float32](vector.Int4{X: 2, Y: 2, Z: 2, W: 2}))
	assert.Equal(t, vector.Float2{X: -1, Y: 0}, v2)
	assert.Equal(t, vector.Float3{X: -1, Y: 0, Z: 1}, v3)
	assert.Equal(t, vector.Float4{X: -1, Y: 0, Z: 1, W: 2}, v4)
}

func TestAssign_Chaining(t *testing.T) {
	t.Parallel()

	v := vector.Int3{X: 1, Y: 1, Z: 1}
	got := v.AddAssign(vector.Int3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, v, got, "returned value is the stored value")

	// Returned values chain into further expressions.
	assert.Equal(t, vector.Int3{X: 6, Y: 9, Z: 12}, v.ScaleAssign(3))
	assert.Equal(t, vector.Int3{X: 5, Y: 8, Z: 11}, v.SubAssign(vector.Int3{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, vector.Int3{X: 5, Y: 8, Z: 11}, v)
}

func TestDot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(11), a2.Dot(b2))
	assert.Equal(t, float32(32), a3.Dot(b3))
	assert.Equal(t, float32(70), a4.Dot(b4))
}

func TestCross(t *testing.T) {
	t.Parallel()

	// 2D: scalar z of the embedded 3D cross product.
	assert.Equal(t, float32(1*4-2*3), a2.Cross(b2))
	assert.Equal(t, float32(1), vector.Float2{X: 1}.Cross(vector.Float2{Y: 1}))
	assert.Equal(t, float32(-1), vector.Float2{Y: 1}.Cross(vector.Float2{X: 1}))

	assert.Equal(t, vector.Float3{X: -3, Y: 6, Z: -3}, a3.Cross(b3))

	// Right-handed basis.
	ex, ey, ez := vector.Int3{X: 1}, vector.Int3{Y: 1}, vector.Int3{Z: 1}
	assert.Equal(t, ez, ex.Cross(ey))
	assert.Equal(t, ex, ey.Cross(ez))
	assert.Equal(t, ey, ez.Cross(ex))
}

func TestLength2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(5), a2.Length2())
	assert.Equal(t, float32(14), a3.Length2())
	assert.Equal(t, float32(30), a4.Length2())
}

func TestDistance2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(8), a2.Distance2(b2))
	assert.Equal(t, float32(27), a3.Distance2(b3))
	assert.Equal(t, float32(64), a4.Distance2(b4))
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, kSqrt5, float64(a2.Length()), 1e-6)
	assert.InDelta(t, kSqrt14, float64(a3.Length()), 1e-6)
	assert.InDelta(t, kSqrt30, float64(a4.Length()), 1e-6)

	assert.Equal(t, 5, vector.Int2{X: 3, Y: 4}.Length())
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, kSqrt8, float64(a2.Distance(b2)), 1e-6)
	assert.InDelta(t, kSqrt27, float64(a3.Distance(b3)), 1e-6)
	assert.Equal(t, float32(8), a4.Distance(b4))
}

func TestNormalized(t *testing.T) {
	t.Parallel()

	assert.Equal(t, a2.Scale(1/a2.Length()), a2.Normalized())
	assert.Equal(t, a3.Scale(1/a3.Length()), a3.Normalized())
	assert.Equal(t, a4.Scale(1/a4.Length()), a4.Normalized())

	assert.InDelta(t, 1.0, float64(a3.Normalized().Length()), 1e-6)
	assert.True(t, vector.Double2{X: 3, Y: 4}.Normalized().ApproxEqual(vector.Double2{X: 0.6, Y: 0.8}, 1e-15))
}

func TestNormalized_IntegerTruncates(t *testing.T) {
	t.Parallel()

	// |(3, 4)| = 5 and 1/5 == 0 in integer arithmetic.
	assert.Equal(t, vector.Int2{}, vector.Int2{X: 3, Y: 4}.Normalized())
	assert.Equal(t, vector.Int3{}, vector.Int3{X: 2, Y: 3, Z: 6}.Normalized())
	assert.Equal(t, vector.Int4{}, vector.Int4{X: 0, Y: 0, Z: 0, W: 2}.Normalized())

	// Truncated |v| == 1 leaves the vector as is.
	assert.Equal(t, vector.Int2{X: 1}, vector.Int2{X: 1}.Normalized())
	assert.Equal(t, vector.Int3{X: 1, Y: 1}, vector.Int3{X: 1, Y: 1}.Normalized())

	assert.Panics(t, func() { _ = vector.Int2{}.Normalized() })
	assert.Panics(t, func() { _ = vector.Int3{}.Normalized() })
	assert.Panics(t, func() { _ = vector.Int4{}.Normalized() })
}

func TestNormalized_ZeroVectorIsUnguarded(t *testing.T) {
	t.Parallel()

	n := vector.Float3{}.Normalized()
	// 0 * (1/0) = 0 * +Inf = NaN in every component.
	assert.True(t, n.X != n.X && n.Y != n.Y && n.Z != n.Z, "got %v", n)
}

func TestAt(t *testing.T) {
	t.Parallel()

	for i, want := range a4.Array() {
		got, err := a4.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for i, want := range a3.Array() {
		got, err := a3.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for i, want := range a2.Array() {
		got, err := a2.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   func() (float32, error)
		msg  string
	}{
		{"vec2 negative", func() (float32, error) { return a2.At(-1) }, "Vec2.At(-1): vector: index out of range"},
		{"vec2 past end", func() (float32, error) { return a2.At(2) }, "Vec2.At(2): vector: index out of range"},
		{"vec3 past end", func() (float32, error) { return a3.At(3) }, "Vec3.At(3): vector: index out of range"},
		{"vec4 past end", func() (float32, error) { return a4.At(4) }, "Vec4.At(4): vector: index out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.at()
			require.ErrorIs(t, err, vector.ErrOutOfRange)
			assert.EqualError(t, err, tc.msg)
			assert.Zero(t, got)
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	var v vector.Int4
	for i := 0; i < v.Dim(); i++ {
		require.NoError(t, v.Set(i, (i+1)*10))
	}
	assert.Equal(t, vector.Int4{X: 10, Y: 20, Z: 30, W: 40}, v)

	err := v.Set(4, 99)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	assert.Equal(t, vector.Int4{X: 10, Y: 20, Z: 30, W: 40}, v, "failed Set must not modify")

	var v2 vector.Int2
	require.NoError(t, v2.Set(1, 7))
	require.ErrorIs(t, v2.Set(-1, 7), vector.ErrOutOfRange)
	assert.Equal(t, vector.Int2{Y: 7}, v2)

	var v3 vector.Int3
	require.NoError(t, v3.Set(2, 5))
	require.ErrorIs(t, v3.Set(3, 5), vector.ErrOutOfRange)
	assert.Equal(t, vector.Int3{Z: 5}, v3)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1, 2)", a2.String())
	assert.Equal(t, "(1, 2, 3)", a3.String())
	assert.Equal(t, "(1.5, 2, 3, -4)", vector.Double4{X: 1.5, Y: 2, Z: 3, W: -4}.String())
}

func TestCast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Int2{X: 1, Y: -2}, vector.Cast2[int](vector.Double2{X: 1.9, Y: -2.9}))
	assert.Equal(t, vector.Double3{X: 1, Y: 2, Z: 3}, vector.Cast3[float64](a3))
	assert.Equal(t, vector.Vec4[uint8]{X: 1, Y: 2, Z: 3, W: 4}, vector.Cast4[uint8](a4))
}
