// SPDX-License-Identifier: MIT

// Package numeric holds the scalar layer underneath vector and matrix:
// generic number constraints, per-type limits and a self-contained square root.
//
// What lives here:
//
//   - Number, Integer, Float: type-set constraints accepted by every generic
//     type in the module (named types included via ~).
//   - Epsilon, MinNormal, NaN, Inf, IsNaN, IsInf, Abs, Cast: width-aware helpers
//     that pick float32 or float64 limits from the instantiated type.
//   - Sqrt / SqrtWith: Newton–Raphson square root with explicit domain handling.
//     No call into math.Sqrt; results are reproducible bit for bit across
//     platforms for the same inputs and options.
//
// Domain handling of Sqrt, in priority order:
//
//	NaN        → NaN
//	x < 0      → NaN
//	+Inf       → +Inf
//	|x| < ε    → 0
//	|1 − x| < ε → 1
//	otherwise  → range-reduce by 4 while x > 4, then iterate from x/2
//
// Errors are never returned: undefined results are reported as IEEE NaN/Inf
// and propagate silently through later arithmetic.
//
//	r := numeric.Sqrt(float32(30)) // ≈ 5.4772255
package numeric
