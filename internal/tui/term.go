package tui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// TermSize returns the current terminal dimensions, or a conventional
// 80x24 when stdout is not a terminal. Used to seed the viewport before
// the first WindowSizeMsg arrives.
func TermSize() (width, height int) {
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}
