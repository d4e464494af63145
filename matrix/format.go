// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// writeRow appends one "[a, b, c]\n" line.
func writeRow[T numeric.Number](sb *strings.Builder, row []T) {
	sb.WriteString(_fmtRowOpen)
	for j, v := range row {
		if j > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(sb, "%v", v)
	}
	sb.WriteString(_fmtRowClose)
}
