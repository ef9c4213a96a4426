package vmath

import (
	"strconv"
	"strings"
)

// defaultDigits is the precision used by every String method.
const defaultDigits = 2

// formatRow renders elements with a fixed number of decimals, comma
// separated. Integer elements render with decimals too ("3.00").
func formatRow[T Element](sb *strings.Builder, elems []T, digits int) {
	for i, v := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', digits, 64))
	}
}

func formatVec[T Element](elems []T, digits int) string {
	var sb strings.Builder
	formatRow(&sb, elems, digits)
	return sb.String()
}

// formatMat renders an n×n matrix one row per line.
func formatMat[T Element](elems []T, n, digits int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		formatRow(&sb, elems[r*n:r*n+n], digits)
	}
	return sb.String()
}
