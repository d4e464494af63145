// SPDX-License-Identifier: MIT

package numeric

// reductionBase is the range-reduction step: sqrt(4x) = 2·sqrt(x).
const reductionBase = 4

// Sqrt returns the square root of x using the default Newton–Raphson policy.
// See SqrtWith for the algorithm and domain rules.
func Sqrt[T Number](x T) T {
	return SqrtWith(x)
}

// SqrtWith returns the square root of x with a configurable iteration policy.
//
// Implementation:
//   - Stage 1: resolve options (DefaultMaxIterations, DefaultTolerance).
//   - Stage 2: integer T is evaluated in float64 and truncated back;
//     negative integers yield 0 because integers cannot hold NaN.
//   - Stage 3: domain checks (NaN, negative, +Inf, ≈0, ≈1) in that order.
//   - Stage 4: range reduction while x > 4 (x /= 4, multiplier *= 2).
//   - Stage 5: Newton iteration from x/2 until the relative step drops below
//     the tolerance or the iteration cap is reached.
//
// Behavior highlights:
//   - Never panics and never calls math.Sqrt.
//   - ε and the default tolerance follow the width of T (float32 vs float64).
//
// Inputs:
//   - x: value whose square root is wanted.
//   - opts: optional WithMaxIterations / WithTolerance.
//
// Returns:
//   - T: the root, or NaN / +Inf sentinels on the domain edges.
//
// Complexity:
//   - Time O(log₄ x + maxIter), Space O(1).
func SqrtWith[T Number](x T, opts ...Option) T {
	o := gatherOptions(opts...)

	if !isFloat[T]() {
		if x < 0 {
			return 0
		}

		return T(sqrtChecked(float64(x), o))
	}

	return sqrtChecked(x, o)
}

// sqrtChecked applies the domain rules before handing over to sqrtReduced.
// T is always a float instantiation here.
func sqrtChecked[T Number](x T, o Options) T {
	eps := Epsilon[T]()

	switch {
	case IsNaN(x):
		return NaN[T]()
	case x < 0:
		return NaN[T]()
	case IsInf(x, 1):
		return x
	case Abs(x) < eps:
		return 0
	case Abs(1-x) < eps:
		return 1
	}

	return sqrtReduced(x, o)
}

// sqrtReduced shrinks x into (0, 4] keeping the Newton start x/2 well conditioned.
func sqrtReduced[T Number](x T, o Options) T {
	var mult T = 1
	for x > reductionBase {
		x /= reductionBase
		mult *= 2
	}

	return mult * newton(x, o)
}

// newton iterates xₙ₊₁ = (xₙ + x/xₙ) / 2 starting at x/2.
func newton[T Number](x T, o Options) T {
	tol := MinNormal[T]()
	if o.tolerance > 0 {
		tol = T(o.tolerance)
	}

	xn := x / 2
	for i := 0; i < o.maxIter; i++ {
		if Abs(xn-x/xn)/(1+xn) < tol {
			break
		}
		xn = (xn + x/xn) / 2
	}

	return xn
}
