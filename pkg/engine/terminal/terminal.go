// Package terminal answers questions about the terminal the game runs in.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether the terminal can show a minWidth x minHeight screen,
// along with the size it measured. Output that is not a terminal always fits.
func Fits(minWidth, minHeight int) (width, height int, ok bool) {
	if !IsTerminal(os.Stdout) {
		return minWidth, minHeight, true
	}
	width, height = GetSize()
	return width, height, fits(width, height, minWidth, minHeight)
}

func fits(width, height, minWidth, minHeight int) bool {
	return width >= minWidth && height >= minHeight
}
