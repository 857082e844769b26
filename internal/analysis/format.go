package analysis

import "fmt"

// FormatFileSize renders a byte count as a human-readable string with one
// decimal place: 512 -> "512.0 B", 2516582 -> "2.4 MB".
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}
