package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeSuffixes lists the unit suffixes for sizes of one kilobyte and above.
var sizeSuffixes = []string{"kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count as a compact human-readable string using
// binary units. Values below one kilobyte keep the exact byte count; larger
// values show one decimal place until they reach two digits.
func FormatFileSize(byteCount int64) string {
	if byteCount < 0 {
		return "0b"
	}
	if byteCount < 1024 {
		return strconv.FormatInt(byteCount, 10) + "b"
	}
	scaledValue := float64(byteCount) / 1024
	suffixIndex := 0
	for scaledValue >= 1024 && suffixIndex < len(sizeSuffixes)-1 {
		scaledValue /= 1024
		suffixIndex++
	}
	if scaledValue < 10 {
		formattedValue := strings.TrimSuffix(fmt.Sprintf("%.1f", scaledValue), ".0")
		return formattedValue + sizeSuffixes[suffixIndex]
	}
	return fmt.Sprintf("%.0f%s", scaledValue, sizeSuffixes[suffixIndex])
}
