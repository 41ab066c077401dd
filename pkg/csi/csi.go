/*
Package csi queries the terminal for its size, first through the tty ioctl and
then through CSI (Control Sequence Introducer) escape sequences.
*/
package csi

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// QueryTimeout is the default timeout for CSI queries
const QueryTimeout = 100 * time.Millisecond

// QueryWindowSize returns the size of the terminal attached to f in character cells
func QueryWindowSize(f *os.File) (cols, rows int, err error) {
	if f == nil {
		return 0, 0, fmt.Errorf("no file to query")
	}
	return term.GetSize(int(f.Fd()))
}

// QueryTextAreaSizeInChars asks the controlling terminal for its text area
// size using CSI 18t. Used when stdout is redirected but a tty is still attached.
func QueryTextAreaSizeInChars() (cols, rows int, ok bool) {
	query := wrapTmuxPassthrough("\x1b[18t")

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return 0, 0, false
	}
	defer tty.Close()

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return 0, 0, false
	}
	defer term.Restore(int(tty.Fd()), oldState)

	if _, err := tty.WriteString(query); err != nil {
		return 0, 0, false
	}

	responseChan := make(chan [2]int, 1)
	go func() {
		buf := make([]byte, 64)
		n, err := tty.Read(buf)
		if err != nil || n == 0 {
			responseChan <- [2]int{0, 0}
			return
		}
		cols, rows := ParseWindowSizeResponse(string(buf[:n]))
		responseChan <- [2]int{cols, rows}
	}()

	select {
	case result := <-responseChan:
		return result[0], result[1], result[0] > 0 && result[1] > 0
	case <-time.After(QueryTimeout):
		return 0, 0, false
	}
}

// ParseWindowSizeResponse parses a CSI 18t reply of the form ESC[8;rows;colst
func ParseWindowSizeResponse(response string) (cols, rows int) {
	start := strings.Index(response, "[8;")
	if start == -1 {
		return 0, 0
	}
	remaining := response[start+3:]

	end := strings.IndexByte(remaining, 't')
	if end == -1 {
		return 0, 0
	}

	parts := strings.Split(remaining[:end], ";")
	if len(parts) < 2 {
		return 0, 0
	}
	r, err := strconv.Atoi(parts[0])
	if err != nil || r <= 0 {
		return 0, 0
	}
	c, err := strconv.Atoi(parts[1])
	if err != nil || c <= 0 {
		return 0, 0
	}
	return c, r
}

// QuerySupported checks if a terminal likely answers CSI queries
func QuerySupported() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "Apple_Terminal", "vscode":
		return false
	}
	return true
}

// inTmux checks if running inside tmux
func inTmux() bool {
	return os.Getenv("TMUX") != "" || os.Getenv("TERM_PROGRAM") == "tmux"
}

// wrapTmuxPassthrough wraps an escape sequence for tmux passthrough if needed
func wrapTmuxPassthrough(output string) string {
	if inTmux() {
		return tmuxPassthrough(output)
	}
	return output
}

// tmuxPassthrough formats \ePtmux;{escaped_sequence}\e\\ where every ESC
// in the sequence is doubled
func tmuxPassthrough(output string) string {
	if !strings.HasPrefix(output, "\x1b") {
		return output
	}
	return "\x1bPtmux;" + strings.ReplaceAll(output, "\x1b", "\x1b\x1b") + "\x1b\\"
}
