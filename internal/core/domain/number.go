package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Bounds outside which FormatNumber switches to exponent notation.
const (
	exponentAbove = 1e21
	exponentBelow = 1e-6
)

// infinityLiteral is the only non-digit spelling ParseNumber accepts.
const infinityLiteral = "Infinity"

// ParseNumber reads the longest numeric prefix of s as a float64.
// The prefix is an optional sign followed by either "Infinity" or decimal
// digits with an optional fraction and exponent. Hex, "inf" and other
// spellings have no numeric prefix. Text with no numeric prefix yields NaN.
// Overflow yields a signed infinity.
func ParseNumber(s string) float64 {
	prefix := numericPrefix(strings.TrimLeft(s, " \t\n\r\v\f"))
	if prefix == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// numericPrefix returns the leading decimal literal of s, or "".
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], infinityLiteral) {
		return s[:i+len(infinityLiteral)]
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatNumber renders f with the shortest digits that round-trip.
// Magnitudes at or above 1e21 and below 1e-6 use exponent notation
// without zero padding, e.g. "1e+21" and "1.5e-7".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= exponentAbove || abs < exponentBelow {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
