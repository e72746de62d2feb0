package report

import "fmt"

// sizeUnits is the unit ladder for kilobyte-based values, capped at TB.
var sizeUnits = [...]string{"KB", "MB", "GB", "TB"}

// HumanSizeKB renders a kilobyte count with one decimal in the largest
// unit that keeps the scaled value under 1024, never scaling past TB.
// Negative inputs (a source reporting available > total) print as-is.
func HumanSizeKB(kb int64) string {
	value := float64(kb)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// formatUptime renders seconds as "XdYhZm"
func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh%dm", hours, minutes)
}
