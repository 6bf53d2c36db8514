package utils

import "time"

// modifiedTimeLayout renders timestamps with minute precision for tree annotations.
const modifiedTimeLayout = "2006-01-02 15:04"

// FormatTimestamp renders the provided time in the local time zone. The zero
// time produces an empty string so callers can omit missing timestamps.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Local().Format(modifiedTimeLayout)
}
