package utils

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with 1024-based units and two-decimal
// rounding, e.g. 1500 -> "1.46 KB". Sizes past GB stay in GB.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	// Trim trailing zeros the way the UI formatter does: 1 KB, not 1.00 KB
	s := strconv.FormatFloat(size, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return fmt.Sprintf("%s %s", s, sizeUnits[unit])
}
