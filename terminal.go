package climg

import (
	"os"

	"github.com/blacktop/climg/pkg/csi"
)

// Fallback terminal size when nothing can be queried
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// TerminalBounds is a terminal size in character cells
type TerminalBounds struct {
	Width  int
	Height int
}

// TerminalSizer reports the current terminal size. It is queried on every
// render because the window may be resized between calls.
type TerminalSizer interface {
	TerminalSize() (TerminalBounds, error)
}

// StdoutSizer queries the terminal behind stdout, then the controlling tty,
// then falls back to 80x24. One row is kept free for the shell prompt.
type StdoutSizer struct{}

// TerminalSize returns the usable terminal size
func (StdoutSizer) TerminalSize() (TerminalBounds, error) {
	cols, rows, err := csi.QueryWindowSize(os.Stdout)
	if err != nil || cols <= 0 || rows <= 0 {
		var ok bool
		if csi.QuerySupported() {
			cols, rows, ok = csi.QueryTextAreaSizeInChars()
		}
		if !ok {
			cols, rows = DefaultTerminalWidth, DefaultTerminalHeight
		}
	}
	return TerminalBounds{Width: cols, Height: max(rows-1, 1)}, nil
}

// FixedSize is a TerminalSizer with a constant size
type FixedSize TerminalBounds

// TerminalSize returns the fixed bounds
func (f FixedSize) TerminalSize() (TerminalBounds, error) {
	return TerminalBounds(f), nil
}
