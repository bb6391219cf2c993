// Package draw renders to ANSI terminals using half-block characters.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
)

// Bar renders a fixed-width gauge such as "████▒▒▒▒" for a fraction in [0,1].
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = max(0, min(1, fraction))
	filled := int(fraction*float64(width) + 0.5)
	buf := make([]rune, width)
	for i := range buf {
		if i < filled {
			buf[i] = BlockFull
		} else {
			buf[i] = BlockLight
		}
	}
	return string(buf)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
