package reports

import "fmt"

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// FormatSize renders a byte count: "500 bytes" below 1 KB, then KB, MB, GB and TB with two decimals,
// each unit 1024 times the previous one. Fractional byte counts below 1 KB are truncated.
func FormatSize(bytes float64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d bytes", int64(bytes))
	}
	value := bytes
	for i, unit := range sizeUnits {
		value /= 1024
		if value < 1024 || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
	}
	return ""
}
