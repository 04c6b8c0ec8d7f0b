package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay paints the floating view over the base view with its top-left
// corner at cell (x, y). Both views may be styled; the splice cuts base
// lines at cell boundaries with ANSI sequences preserved on both sides.
// Offsets may be negative or extend past the base; the overlapping part is
// painted and the rest is clipped to the base's extent.
func Overlay(base, float string, x, y int) string {
	if float == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	floatLines := strings.Split(float, "\n")

	baseWidth := 0
	for _, line := range baseLines {
		if w := ansi.StringWidth(line); w > baseWidth {
			baseWidth = w
		}
	}

	for i, fl := range floatLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		fw := ansi.StringWidth(fl)
		left, right := x, x+fw
		if left < 0 {
			fl = ansi.TruncateLeft(fl, -left, "")
			fw += left
			left = 0
		}
		if left >= baseWidth || fw <= 0 {
			continue
		}
		if right > baseWidth {
			fl = ansi.Truncate(fl, baseWidth-left, "")
			right = baseWidth
		}

		line := baseLines[row]
		prefix := ansi.Truncate(line, left, "")
		if pw := ansi.StringWidth(prefix); pw < left {
			prefix += strings.Repeat(" ", left-pw)
		}
		suffix := ansi.TruncateLeft(line, right, "")

		baseLines[row] = prefix + fl + suffix
	}

	return strings.Join(baseLines, "\n")
}
