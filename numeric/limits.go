// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"unsafe"
)

// Per-width limits. Kept as variables so that conversion to an integer T is a
// run-time conversion instead of a constant-overflow compile error.
var (
	float32Epsilon   = float32(1.1920928955078125e-07) // 2^-23
	float64Epsilon   = 2.220446049250313e-16           // 2^-52
	float32MinNormal = float32(1.1754943508222875e-38) // 2^-126
	float64MinNormal = 2.2250738585072014e-308         // 2^-1022
)

// isFloat reports whether T has a fractional part (1/2 != 0).
func isFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}

// isSingle reports whether T is a 4-byte float.
func isSingle[T Number]() bool {
	var z T

	return isFloat[T]() && unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value. Integer types report 0.
func Epsilon[T Number]() T {
	switch {
	case !isFloat[T]():
		return 0
	case isSingle[T]():
		return T(float32Epsilon)
	default:
		return T(float64Epsilon)
	}
}

// MinNormal returns the smallest positive normal value of T.
// Integer types report 1.
func MinNormal[T Number]() T {
	switch {
	case !isFloat[T]():
		return 1
	case isSingle[T]():
		return T(float32MinNormal)
	default:
		return T(float64MinNormal)
	}
}

// NaN returns a quiet NaN of T. Only meaningful for Float types.
func NaN[T Number]() T {
	return T(math.NaN())
}

// Inf returns +Inf of T if sign >= 0, -Inf if sign < 0. Only meaningful for Float types.
func Inf[T Number](sign int) T {
	return T(math.Inf(sign))
}

// IsNaN reports whether x is a NaN. Integers never are.
func IsNaN[T Number](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity according to sign
// (sign > 0: +Inf, sign < 0: -Inf, sign == 0: either).
func IsInf[T Number](x T, sign int) bool {
	if !isFloat[T]() {
		return false
	}

	return math.IsInf(float64(x), sign)
}

// Abs returns |x|. Signed zero collapses to +0.
func Abs[T Number](x T) T {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -x
	default:
		return x
	}
}

// Cast converts v to U with Go conversion rules (truncation toward zero for
// float → integer).
func Cast[U, T Number](v T) U {
	return U(v)
}
