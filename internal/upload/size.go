package upload

import (
	"math"
	"strconv"
)

// File size formatting constants
const (
	FileSizeUnit = 1024
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize formats a byte count with at most two decimals, e.g. "1.5 KB"
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	div, exp := int64(1), 0
	for n := bytes; n >= FileSizeUnit && exp < len(fileSizeUnits)-1; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}

	value := math.Round(float64(bytes)/float64(div)*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + fileSizeUnits[exp]
}
