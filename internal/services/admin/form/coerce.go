package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts form input to a number. Anything that is not a finite
// decimal yields NaN, which validation later rejects. A comma is the decimal
// separator when the input has no dot ("12,5"); otherwise commas group
// thousands ("1,234.50").
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", "")
	} else {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) {
		return math.NaN()
	}
	return value
}

// ParseInt converts form input to an integer, or 0 when it is not one.
func ParseInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

// FormatNumber renders a draft number back into an input value.
func FormatNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
