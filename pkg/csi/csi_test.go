package csi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWindowSizeResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantCols int
		wantRows int
	}{
		{"Valid", "\x1b[8;24;80t", 80, 24},
		{"Trailing bytes", "\x1b[8;50;200tjunk", 200, 50},
		{"Missing prefix", "\x1b[4;600;800t", 0, 0},
		{"Missing terminator", "\x1b[8;24;80", 0, 0},
		{"Single field", "\x1b[8;24t", 0, 0},
		{"Not a number", "\x1b[8;ab;80t", 0, 0},
		{"Zero rows", "\x1b[8;0;80t", 0, 0},
		{"Empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := ParseWindowSizeResponse(tt.response)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestTmuxPassthrough(t *testing.T) {
	assert.Equal(t, "\x1bPtmux;\x1b\x1b[18t\x1b\\", tmuxPassthrough("\x1b[18t"))
	assert.Equal(t, "plain", tmuxPassthrough("plain"))
}

func TestWrapTmuxPassthrough(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM_PROGRAM", "")
	assert.Equal(t, "\x1b[18t", wrapTmuxPassthrough("\x1b[18t"))

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	assert.Equal(t, "\x1bPtmux;\x1b\x1b[18t\x1b\\", wrapTmuxPassthrough("\x1b[18t"))
}

func TestQuerySupported(t *testing.T) {
	tests := []struct {
		term        string
		termProgram string
		want        bool
	}{
		{"xterm-256color", "", true},
		{"dumb", "", false},
		{"xterm-256color", "Apple_Terminal", false},
		{"xterm-256color", "vscode", false},
		{"xterm-kitty", "kitty", true},
	}

	for _, tt := range tests {
		t.Run(tt.term+"/"+tt.termProgram, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			t.Setenv("TERM_PROGRAM", tt.termProgram)
			assert.Equal(t, tt.want, QuerySupported())
		})
	}
}

func TestQueryWindowSizeNil(t *testing.T) {
	_, _, err := QueryWindowSize(nil)
	assert.Error(t, err)
}
