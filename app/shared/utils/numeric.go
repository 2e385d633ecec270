package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLenientInt reads an integer the way a numeric text field is read:
// leading whitespace and an optional sign are accepted, then digits up to the
// first non-digit. Input with no leading digits reports ok=false.
func ParseLenientInt(raw string) (value int, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOrZero coerces raw text to an integer, treating empty or non-numeric
// input as zero.
func IntOrZero(raw string) int {
	n, _ := ParseLenientInt(raw)
	return n
}
