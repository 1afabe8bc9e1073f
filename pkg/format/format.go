// Package format renders values for human-readable output.
package format

import "fmt"

const (
	kilobyte = 1024
	megabyte = 1024 * 1024
)

// FileSize renders a byte count as "512 Byte", "1.00 KB" or "1.00 MB".
// Byte values carry no decimals; KB and MB carry two.
func FileSize(bytes int64) string {
	switch {
	case bytes < kilobyte:
		return fmt.Sprintf("%d Byte", bytes)
	case bytes < megabyte:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kilobyte)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/megabyte)
	}
}
