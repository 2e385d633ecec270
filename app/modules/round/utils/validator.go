package roundutil

import (
	"strings"

	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/utils"
)

// NormalizePlayerName trims a roster entry. ok is false when nothing is left.
func NormalizePlayerName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	return trimmed, trimmed != ""
}

// CoerceHoleCount turns the raw hole count input into a positive integer.
// Empty, non-numeric, zero and negative input are all "not ready".
func CoerceHoleCount(raw string) (int, bool) {
	n, ok := utils.ParseLenientInt(raw)
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}
