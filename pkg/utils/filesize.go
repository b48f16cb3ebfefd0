package utils

import (
	"fmt"
	"strings"
)

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

// FormatBytes converts bytes to human-readable format
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// KBToMB converts a kilobyte count to megabytes at two-decimal precision.
// Every reported size goes through this so output stays uniform.
func KBToMB(kb int64) float64 {
	mb := float64(kb) / 1024.0
	return float64(int64(mb*100+0.5)) / 100.0
}

// ParseSize converts human-readable size to bytes
func ParseSize(size string) (int64, error) {
	size = strings.TrimSpace(size)

	var value float64
	var unit string

	_, err := fmt.Sscanf(size, "%f%s", &value, &unit)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %s", size)
	}

	switch strings.ToUpper(unit) {
	case "B":
		return int64(value), nil
	case "KB", "K":
		return int64(value * KB), nil
	case "MB", "M":
		return int64(value * MB), nil
	case "GB", "G":
		return int64(value * GB), nil
	case "TB", "T":
		return int64(value * TB), nil
	default:
		return 0, fmt.Errorf("unknown unit: %s", unit)
	}
}
