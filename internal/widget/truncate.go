package widget

import "github.com/mattn/go-runewidth"

// truncate shortens s to at most maxWidth display columns, replacing the
// tail with an ellipsis when the string does not fit. Width is measured in
// terminal columns, not bytes, so wide runes count for two.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "…"
	if maxWidth == 1 {
		return ellipsis
	}
	return clipWidth(s, maxWidth-1) + ellipsis
}

// clipWidth returns the longest prefix of s whose display width does not
// exceed maxWidth.
func clipWidth(s string, maxWidth int) string {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxWidth {
			return s[:i]
		}
		w += rw
	}
	return s
}
