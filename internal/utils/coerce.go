// internal/utils/coerce.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToNumber parses raw as a float64, returning fallback for blank,
// unparseable or non-finite input.
func ToNumber(raw string, fallback float64) float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		parsed, err = parseLeadingFloat(value)
		if err != nil {
			return fallback
		}
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fallback
	}
	return parsed
}

// parseLeadingFloat accepts values such as "12.5 in" or "3/4" (-> 3) by
// parsing the longest numeric prefix.
func parseLeadingFloat(value string) (float64, error) {
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
	for i, r := range value {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case (r == '+' || r == '-') && (i == 0 || value[i-1] == 'e' || value[i-1] == 'E'):
		case r == '.' && !seenDot && !seenExp:
			seenDot = true
		case (r == 'e' || r == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			return strconv.ParseFloat(trimNumericTail(value[:end]), 64)
		}
		end = i + 1
	}
	return strconv.ParseFloat(trimNumericTail(value[:end]), 64)
}

func trimNumericTail(s string) string {
	return strings.TrimRight(s, "eE+-")
}

// ToBoolean reports whether raw is "true", "1" or "yes", ignoring case and
// surrounding space.
func ToBoolean(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ToArray splits a comma separated value into trimmed, non-empty items.
// It returns nil when no item remains.
func ToArray(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
