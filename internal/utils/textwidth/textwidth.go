// Package textwidth implements the display-width rule used by the plain-text
// export: code points above 127 (CJK and other wide glyphs) occupy two columns
// in a monospaced rendering, everything else occupies one.
package textwidth

import "strings"

// Width returns the display width of s: 1 per code point <= 127, 2 otherwise.
func Width(s string) int {
	width := 0
	for _, r := range s {
		if r > 127 {
			width += 2
		} else {
			width++
		}
	}
	return width
}

// PadRight pads s with spaces up to the target display width.
// Strings already at or beyond the target are returned unchanged (never truncated).
func PadRight(s string, target int) string {
	padding := target - Width(s)
	if padding <= 0 {
		return s
	}
	return s + strings.Repeat(" ", padding)
}
