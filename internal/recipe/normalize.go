// Package recipe normalizes loosely-formatted recipe fields into the
// canonical numeric values the estimators consume: degrees Celsius, minutes,
// and milliliters. It is a leaf package with no dependencies beyond the
// shared domain types.
package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberPattern extracts the first numeric token, optionally signed and
	// with a decimal part, from free text ("105 C", "100°C", "98.6").
	numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	// hourMinutePattern recognizes compound duration text such as "1h 20m",
	// "2 hours 5 min", or "3h". The minutes group is optional.
	hourMinutePattern = regexp.MustCompile(`(?i)(\d+)\s*h(?:rs?|ours?)?(?:\s*(\d+)\s*m(?:ins?|inutes?)?)?`)

	// bareIntPattern is the fallback for duration text without an hour
	// component ("45 minutes", "90").
	bareIntPattern = regexp.MustCompile(`\d+`)
)

// ParseTemperature extracts a temperature in degrees Celsius from free text.
// It accepts a bare number or a number followed by a unit marker. The second
// return value is false when the input contains no numeric token; absence is
// a sentinel, not an error, and the caller decides whether a default applies.
func ParseTemperature(raw string) (float64, bool) {
	match := numberPattern.FindString(raw)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDurationMinutes extracts a duration in minutes from free text.
//
// The precedence is deliberate and must not be reordered: a structured
// hour/minute pattern ("1h 20m" -> 80) wins over a bare integer ("45
// minutes" -> 45), and text with nothing numeric yields 0.
func ParseDurationMinutes(raw string) float64 {
	if m := hourMinutePattern.FindStringSubmatch(raw); m != nil {
		hours, _ := strconv.ParseFloat(m[1], 64)
		var minutes float64
		if m[2] != "" {
			minutes, _ = strconv.ParseFloat(m[2], 64)
		}
		return hours*60 + minutes
	}
	if m := bareIntPattern.FindString(raw); m != "" {
		v, _ := strconv.ParseFloat(m, 64)
		return v
	}
	return 0
}

// WaterMLFromItem converts an ingredient quantity to its milliliter
// equivalent using a fixed per-unit table. An empty unit, "ml", and "g" are
// identity conversions (1 g of water is approximately 1 mL). Unrecognized
// units contribute zero; silent exclusion is the designed behavior, so this
// never fails.
func WaterMLFromItem(quantity float64, unit string) float64 {
	u := strings.ToLower(strings.TrimSpace(unit))
	switch {
	case u == "" || u == "ml" || u == "g":
		return quantity
	case u == "cup" || u == "cups":
		return quantity * 240
	case u == "tbsp" || u == "tablespoon" || u == "tablespoons":
		return quantity * 15
	case u == "tsp" || u == "teaspoon" || u == "teaspoons":
		return quantity * 5
	case strings.HasPrefix(u, "l"):
		// Covers "l", "liter", "litre" and their plurals.
		return quantity * 1000
	default:
		return 0
	}
}
