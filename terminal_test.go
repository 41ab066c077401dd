package climg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestFixedSize(t *testing.T) {
	b, err := FixedSize{Width: 120, Height: 40}.TerminalSize()
	require.NoError(t, err)
	assert.Equal(t, TerminalBounds{Width: 120, Height: 40}, b)
}

func TestStdoutSizerFallback(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	// dumb terminals are never sent CSI queries
	t.Setenv("TERM", "dumb")

	b, err := StdoutSizer{}.TerminalSize()
	require.NoError(t, err)
	assert.Equal(t, TerminalBounds{Width: DefaultTerminalWidth, Height: DefaultTerminalHeight - 1}, b)
}
