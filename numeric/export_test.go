// SPDX-License-Identifier: MIT

package numeric

// Test-only bridges to unexported helpers.

func IsFloatType[T Number]() bool  { return isFloat[T]() }
func IsSingleType[T Number]() bool { return isSingle[T]() }
