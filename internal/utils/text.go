package utils

import (
	"strings"
	"unicode"
)

// StripControl drops control characters so server-provided values cannot
// inject terminal escape sequences or break the layout.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
